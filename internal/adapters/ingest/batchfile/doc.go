// Package batchfile handles reading logistics batch exports line-by-line
//
// Design choices:
// - One JSON object per line, streamed with bufio.Scanner under a 4MB line cap.
// - Malformed lines are counted and skipped, never fatal; each load reports Stats.
// - Field values decode leniently (FlexFloat/FlexInt/FlexTime) because upstream
//   exports mix numbers, numeric strings, and several date layouts
// - Plain .jsonl and gzip-compressed .jsonl.gz files are both accepted
package batchfile
