package person

// Person is an immutable name/age pair.
type Person struct {
	name string
	age  int
}

// New creates a Person. It never fails; empty names and negative ages are
// accepted as given.
func New(name string, age int) Person {
	return Person{name: name, age: age}
}

// Name returns the name passed to New.
func (p Person) Name() string {
	return p.name
}

// Age returns the age passed to New.
func (p Person) Age() int {
	return p.age
}
