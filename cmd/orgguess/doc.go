// Package main hosts the orgguess CLI entrypoint and command graph.
//
// The Cobra command tree reads texts from files, stdin or flags, hands them
// to the guesser and prints the organization, the candidate ranking or the
// raw entities. Configuration loading, logger setup and run correlation IDs
// are resolved once per invocation in commandContext so subcommands only
// deal with input and output.
package main
