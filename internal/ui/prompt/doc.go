// Package prompt provides the interactive prompts used by "ws new".
//
// Every implementation satisfies the same three-method contract (select,
// free text, yes/no confirm), each with a default answer:
//
//   - [Terminal]: Bubble Tea prompts rendered on stderr, used when stdin
//     is a TTY
//   - [Line]: plain line-oriented prompts for piped stdin
//
// Use [New] to pick between Terminal and Line based on stdin. Tests use
// the scripted prompter in package prompttest.
// Esc or Ctrl+C returns [ErrCancelled].
package prompt
