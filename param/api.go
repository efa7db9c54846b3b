package param

// This file collects thin constructor aliases with names matching the
// vocabulary used elsewhere in this module's documentation. The real
// implementations live in constant.go, radial.go, gaussian2d.go,
// sampled.go and composite.go.

// Product is an alias for NewProduct.
func Product(a, b Parameter, opts ...Option) Parameter { return NewProduct(a, b, opts...) }

// Quotient is an alias for NewQuotient.
func Quotient(a, b Parameter, opts ...Option) Parameter { return NewQuotient(a, b, opts...) }

// Sum is an alias for NewSum.
func Sum(a, b Parameter, opts ...Option) Parameter { return NewSum(a, b, opts...) }

// Difference is an alias for NewDifference.
func Difference(a, b Parameter, opts ...Option) Parameter { return NewDifference(a, b, opts...) }
