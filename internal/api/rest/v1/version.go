package v1

// BasePath is the route prefix for the versioned API surface. Webhook
// endpoints live outside it so gateway dashboards keep a stable URL.
const BasePath = "/api"
