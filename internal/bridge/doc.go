// Package bridge orchestrates one recognition request end to end and owns
// the JSON contract with the calling application.
//
// # Contract
//
// Every invocation prints exactly one line of JSON to stdout, with keys among
// {success, latex, confidence, error, traceback}:
//
//	{"success":true,"latex":"x^{2}+1","confidence":1}
//	{"error":"No image found in clipboard"}
//
// Failures are always encoded in the JSON body; the process exit code stays 0
// for every resolvable invocation so the caller branches on the presence of
// "error" versus "success", never on exit status.
//
// # Error handling
//
// Configuration problems are absorbed by the config package (defaults).
// Everything else - missing clipboard image, unreadable file, engine failure,
// even a panic - funnels into an error Result. A recovered panic additionally
// carries the full stack in "traceback".
package bridge
