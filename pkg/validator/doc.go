// Package validator provides small, composable validation rules for form
// input.
//
// A Rule couples a boolean Check function with the error metadata reported
// when the check fails. Rules are evaluated with Apply, which runs every rule
// and aggregates the failures into a ValidationErrors slice that satisfies the
// error interface, so all field problems surface in a single pass.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `format_rules.go`). Every exported rule constructor simply returns a Rule
// value; there is no hidden global state, therefore the package is stateless
// and goroutine-safe.
//
// Core building blocks:
//   - Rule              – Check func plus error metadata
//   - ValidationError   – a single failure with a stable key
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name).WithMessage("Informe seu nome."),
//	    validator.EmailShape("email", email),
//	    validator.MinLen("message", message, 10),
//	    validator.Accepted("consent", consent),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("email")
//	}
//
// # Error Handling
//
// ValidationErrors works with errors.As, so callers can detect validation
// problems while keeping field details. Individual field errors can be
// inspected with Has, Get, First, GetErrors and Fields.
package validator
