package transforms

import "github.com/synaptecltd/transix/mathfuncs"

// Variant selects the normalisation of the Clarke transform.
type Variant int

const (
	// PowerInvariant uses the orthonormal matrix, so instantaneous power is
	// the same in both frames. It is the zero value and the default.
	PowerInvariant Variant = iota
	// PowerVariant keeps peak amplitudes equal between the abc and alpha-beta
	// frames.
	PowerVariant
)

const variantErrMsg = "variant must be 'power_invariant' or 'power_variant'"

var variantNames = map[Variant]string{
	PowerInvariant: "power_invariant",
	PowerVariant:   "power_variant",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "Variant(invalid)"
}

// Returns the variant named by s, either "power_invariant" or "power_variant".
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return 0, mathfuncs.InvalidArgument(variantErrMsg)
}

// Validate returns an InvalidArgument error for values outside the enumeration.
func (v Variant) Validate() error {
	if _, ok := variantNames[v]; !ok {
		return mathfuncs.InvalidArgument(variantErrMsg)
	}
	return nil
}

func (v Variant) MarshalText() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

// UnmarshalText lets config decoders and CLI flags set a Variant from its name.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Set and Type satisfy pflag.Value so a Variant can back a command-line flag.
func (v *Variant) Set(s string) error {
	return v.UnmarshalText([]byte(s))
}

func (v *Variant) Type() string {
	return "variant"
}
