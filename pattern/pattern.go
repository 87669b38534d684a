// Package pattern describes the filename templates used to locate
// environment files. A Pattern is an ordered sequence of Parts; expanding a
// Pattern against the active environment name produces every concrete
// filename the template allows, highest priority first.
package pattern

import "strings"

// Placeholder is the token inside a node_env part's value that is replaced
// by the active environment name during expansion.
const Placeholder = "$1"

// PartType identifies how a Part contributes to a filename.
type PartType string

const (
	// TypeFilename marks a literal filename fragment, used verbatim.
	TypeFilename PartType = "filename"

	// TypeNodeEnv marks a fragment parameterized by the active environment
	// name: the Placeholder token in its value is substituted before use.
	TypeNodeEnv PartType = "node_env"
)

// Part is one fragment of a filename template.
type Part struct {
	// Value is the literal text of the fragment. For TypeNodeEnv parts it
	// carries the Placeholder token: ".$1" contributes ".production" when
	// the active environment is "production".
	Value string `yaml:"value" json:"value"`

	// Type selects literal or environment-parameterized behavior. Unknown
	// types behave as TypeFilename.
	Type PartType `yaml:"type" json:"type"`

	// Optional marks fragments that may be omitted. Each optional part
	// doubles the number of expanded candidates.
	Optional bool `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// render returns the part's contribution to a filename. Literal parts
// contribute Value unchanged. TypeNodeEnv parts contribute Value with the
// first Placeholder occurrence replaced by env; a value without the token is
// contributed unchanged rather than rejected.
func (p Part) render(env string) string {
	if p.Type == TypeNodeEnv {
		return strings.Replace(p.Value, Placeholder, env, 1)
	}
	return p.Value
}

// Pattern is an ordered filename template. Order is significant twice over:
// parts contribute text left to right, and expansion priority follows from
// part order.
type Pattern []Part

// Default returns the template most applications want: ".env" plus an
// optional environment-specific suffix, e.g. ".env.development".
func Default() Pattern {
	return Pattern{
		{Value: ".env", Type: TypeFilename},
		{Value: "." + Placeholder, Type: TypeNodeEnv, Optional: true},
	}
}

// Fallback returns the unconditional single-candidate template whose sole
// expansion is ".env". The resolver always tries it after the configured
// pattern.
func Fallback() Pattern {
	return Pattern{{Value: ".env", Type: TypeFilename}}
}

// Expand produces every concrete filename the pattern allows for the given
// environment name, in priority order.
//
// Candidates are grown part by part over a working list that starts with a
// single empty prefix. A mandatory part appends its contribution to every
// prefix in the list. An optional part first clones every current prefix
// as-is onto the tail of the list (the clones are the combinations that
// exclude the part) and then appends its contribution to the prefixes that
// existed before the cloning. Later parts keep building on originals and
// clones alike.
//
// The combination including every part is always first. A pattern with k
// optional parts expands to exactly 2^k candidates. Duplicate strings are
// kept: priority is positional, and callers rely on the exact emission
// order. An empty pattern expands to a single empty string.
func (p Pattern) Expand(env string) []string {
	names := []string{""}
	for _, part := range p {
		text := part.render(env)
		if part.Optional {
			n := len(names)
			names = append(names, names[:n]...)
			for i := 0; i < n; i++ {
				names[i] += text
			}
			continue
		}
		for i := range names {
			names[i] += text
		}
	}
	return names
}
