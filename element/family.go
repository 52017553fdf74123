package element

import "fmt"

// Family identifies a finite element family. Values match the basis
// library's family enumeration.
type Family uint8

const (
	Custom      Family = iota
	P                  // Lagrange
	RT                 // Raviart-Thomas
	N1E                // Nedelec first kind H(curl)
	BDM                // Brezzi-Douglas-Marini
	N2E                // Nedelec second kind H(curl)
	CR                 // Crouzeix-Raviart
	Regge              // Regge
	DPC                // Discontinuous polynomial complete
	Bubble             // Interior bubble
	Serendipity        // Serendipity
)

var familyNames = [...]string{
	Custom:      "custom",
	P:           "P",
	RT:          "RT",
	N1E:         "N1E",
	BDM:         "BDM",
	N2E:         "N2E",
	CR:          "CR",
	Regge:       "Regge",
	DPC:         "DPC",
	Bubble:      "bubble",
	Serendipity: "serendipity",
}

// Families returns every non-custom family in enumeration order
func Families() []Family {
	return []Family{P, RT, N1E, BDM, N2E, CR, Regge, DPC, Bubble, Serendipity}
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

func (f Family) MarshalText() ([]byte, error) {
	if int(f) >= len(familyNames) {
		return nil, fmt.Errorf("family %d: %w", uint8(f), ErrUnknownName)
	}
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) (err error) {
	*f, err = ParseFamily(string(text))
	return
}

func ParseFamily(name string) (Family, error) {
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return Custom, fmt.Errorf("family %q: %w", name, ErrUnknownName)
}

// LagrangeVariant selects how the degrees of freedom of a Lagrange space
// are placed. Values match the basis library's variant enumeration.
type LagrangeVariant uint8

const (
	Equispaced        LagrangeVariant = 0
	GLLWarped         LagrangeVariant = 1
	GLLIsaac          LagrangeVariant = 2
	GLLCentroid       LagrangeVariant = 3
	ChebyshevWarped   LagrangeVariant = 4
	ChebyshevIsaac    LagrangeVariant = 5
	ChebyshevCentroid LagrangeVariant = 6
	GLWarped          LagrangeVariant = 7
	GLIsaac           LagrangeVariant = 8
	GLCentroid        LagrangeVariant = 9
	VTK               LagrangeVariant = 20
	IntegralLegendre  LagrangeVariant = 50 // Moments against Legendre polynomials
	IntegralChebyshev LagrangeVariant = 51 // Moments against Chebyshev polynomials
)

var variantNames = map[LagrangeVariant]string{
	Equispaced:        "equispaced",
	GLLWarped:         "gll_warped",
	GLLIsaac:          "gll_isaac",
	GLLCentroid:       "gll_centroid",
	ChebyshevWarped:   "chebyshev_warped",
	ChebyshevIsaac:    "chebyshev_isaac",
	ChebyshevCentroid: "chebyshev_centroid",
	GLWarped:          "gl_warped",
	GLIsaac:           "gl_isaac",
	GLCentroid:        "gl_centroid",
	VTK:               "vtk",
	IntegralLegendre:  "integral_legendre",
	IntegralChebyshev: "integral_chebyshev",
}

func (v LagrangeVariant) String() string {
	if n, ok := variantNames[v]; ok {
		return n
	}
	return fmt.Sprintf("LagrangeVariant(%d)", uint8(v))
}

func (v LagrangeVariant) MarshalText() ([]byte, error) {
	n, ok := variantNames[v]
	if !ok {
		return nil, fmt.Errorf("lagrange variant %d: %w", uint8(v), ErrUnknownName)
	}
	return []byte(n), nil
}

func (v *LagrangeVariant) UnmarshalText(text []byte) (err error) {
	*v, err = ParseLagrangeVariant(string(text))
	return
}

func ParseLagrangeVariant(name string) (LagrangeVariant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return Equispaced, fmt.Errorf("lagrange variant %q: %w", name, ErrUnknownName)
}
