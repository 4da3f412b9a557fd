// Package helpdesk provides typed wrappers over the ticketing backend's REST
// endpoints: authentication, tickets, users, categories, attachments,
// advanced search, analytics, AI triage, feedback and health.
//
// Every service is a thin layer over apiclient: it builds the request
// descriptor, relies on the client for token injection and error
// normalization, and decodes the response into the DTOs defined here. No
// service retries or caches; failure surfaces as *apiclient.APIError for the
// caller to display.
package helpdesk
