// Package connector implements the third-party service clients behind
// the domain connector interfaces: chat completion, text-to-speech,
// video rendering, CRM and workspace provisioning, issue tracking, lead
// enrichment, market data, scraping and email delivery. Connectors with
// blank credentials degrade to no-ops so pipelines keep going.
package connector
