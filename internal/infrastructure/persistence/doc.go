// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with databases, managing
// orders, subscriptions, leads, products, KPIs, content assets and
// automation runs. The package includes validation and logging for
// traceability and error handling.
package persistence
