// Package logfile provides a MessageRepository over an append-only,
// newline-delimited JSON file.
//
// Each message is one line:
//
//	{"timestamp":1700000000123456789,"name":"Jane","email":"jane@example.com","contents":"Hi!"}
//
// where timestamp is nanoseconds since the Unix epoch. There is no header,
// footer or version marker.
//
// Page tokens are record offsets. Because the file is append-only, new
// messages land after every issued cursor; a file rewritten out of band
// (rotation, hand edits) shifts the windows of tokens issued before the
// rewrite.
//
// The filesystem is an afero.Fs so the repository runs against the OS in
// production and against afero.NewMemMapFs in tests:
//
//	repo := logfile.NewMessageRepository(afero.NewOsFs(), "db/messages.jsonl")
package logfile
