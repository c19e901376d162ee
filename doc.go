// Package redcap is a thin client for the REDCap HTTP API.
//
// A Project wraps one REDCap project: construct it with the API endpoint
// URL and the project token, then call the export/import/delete methods
// for the resource you need. Every method performs exactly one synchronous
// POST against the endpoint; server-side failures are surfaced as a
// *ServerError carrying the server's message and are never retried.
//
//	proj, err := redcap.New("https://redcap.example.org/api/", token)
//	if err != nil {
//		log.Fatal(err)
//	}
//	records, err := proj.ExportRecords(ctx, redcap.ExportRecordsOptions{
//		Fields: []string{"age"},
//	})
//
// Exports that name explicit fields or forms always include the project's
// identifier field in the result, even when it was not requested. Project
// level attributes (field names, form list, events, arms) come from a
// snapshot fetched once on first use and reused until Refresh is called.
package redcap
