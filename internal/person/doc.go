// Package person provides the Person value type.
//
// A Person holds a name and an age. Both are set once by New and are
// readable only through the Name and Age accessors; the fields themselves
// are unexported and no setter exists.
//
// Key constraints:
//   - No validation: any string and any int are stored verbatim
//   - Accessors return the stored value unchanged
//   - Person is a value type; copies share nothing
package person
