// Package strhelp provides small string helpers and identifier generators:
// substring and prefix/suffix predicates, case conversion and slugs, random
// strings, secure hex UIDs, UUIDv4, time-ordered UUIDv7 and ULID values,
// UUID validation and binary conversion, and password complexity checks.
//
// Basic Usage:
//
//	strhelp.StartWith("example.com", "https://") // "https://example.com"
//	strhelp.SnakeCase("Hello, World!")           // "hello_world"
//	strhelp.KebabCase("Crème Brûlée", strhelp.WithLowercase(true)) // "creme-brulee"
//	strhelp.CamelCase("my_variable-name 1")      // "myVariableName1"
//
//	// Random strings (not for secrets) and secure identifiers
//	code, err := strhelp.Random(6, strhelp.CharsetNumeric)
//	token, err := strhelp.UID(32)
//
//	// UUIDs
//	id, err := strhelp.NewV7()
//	fmt.Println(id.String(), id.Time())
//	raw, err := strhelp.UUIDToBin(id.String())
//
// Generators:
//
// A Generator owns the last millisecond timestamp it issued. When the clock
// has not moved past it, the next UUIDv7 uses that timestamp plus one
// millisecond, trading clock accuracy for sort order. Construct one per
// ordering domain and share it; the package-level New and NewV7 use a
// default instance.
//
//	gen := strhelp.NewGenerator()
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use id...
//	}
//
// Thread Safety:
//
// Every helper is stateless except Generator and ULIDGenerator, which
// serialize access to their state with a mutex. Ordering is guaranteed per
// generator within one process, not across processes or clock skew.
//
// Standards Compliance:
//
// UUID layouts follow RFC 4122 and RFC 9562. The UUIDv7 format includes:
//   - 48-bit big-endian Unix timestamp (millisecond precision)
//   - 4-bit version (0111)
//   - 2-bit variant (10)
//   - 74 bits of cryptographically secure random data
package strhelp
