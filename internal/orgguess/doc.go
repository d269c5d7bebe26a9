// Package orgguess picks the organization a set of texts talks about most.
//
// Guesser runs the language's NER pipeline over every text, keeps entities
// labeled as organizations, takes the most frequent entity text and returns
// it in slug form ("Acme   Corp" becomes "acme-corp"). Ties between equally
// frequent organizations are settled by an explicit TiePolicy, and every
// failure (unknown language, no input, no organization, unresolved tie) is
// reported as a distinct error rather than a sentinel value.
package orgguess
