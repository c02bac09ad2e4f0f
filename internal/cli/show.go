package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eli-rousseau/person/internal/person"
)

// Defaults used when neither flags nor an input file provide a value.
const (
	DefaultName = "Eli"
	DefaultAge  = 24
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	Name string
	Age  int
	From string
}

// personView is the printable form of a person.Person.
// It is filled from the accessors only.
type personView struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// String renders the name and age on separate lines.
func (v personView) String() string {
	return fmt.Sprintf("%s\n%d", v.Name, v.Age)
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a person's name and age",
		Long: `Build a person and print its name, then its age, one per line.

Values come from --name and --age, falling back to the --from YAML file,
then to the defaults (Eli, 24). No value is validated.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, opts, cmd)
		},
	}

	addShowFlags(cmd, opts)

	return cmd
}

func addShowFlags(cmd *cobra.Command, opts *ShowOptions) {
	cmd.Flags().StringVar(&opts.Name, "name", DefaultName, "person name")
	cmd.Flags().IntVar(&opts.Age, "age", DefaultAge, "person age")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "YAML file with name and age")
}

func runShow(rootOpts *RootOptions, opts *ShowOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	p, err := resolvePerson(opts, cmd, formatter)
	if err != nil {
		return reportError(formatter, ErrCodeInput, err.Error(), map[string]string{"file": opts.From},
			WrapExitError(ExitCommandError, "failed to load input", err))
	}

	return formatter.Success(personView{Name: p.Name(), Age: p.Age()})
}

// resolvePerson applies flag > file > default precedence.
func resolvePerson(opts *ShowOptions, cmd *cobra.Command, formatter *OutputFormatter) (person.Person, error) {
	name, age := DefaultName, DefaultAge

	if opts.From != "" {
		input, err := LoadInput(opts.From)
		if err != nil {
			return person.Person{}, err
		}
		formatter.VerboseLog("Loaded input from %s", opts.From)
		if input.Name != nil {
			name = *input.Name
		}
		if input.Age != nil {
			age = *input.Age
		}
	}

	if cmd.Flags().Changed("name") {
		name = opts.Name
	}
	if cmd.Flags().Changed("age") {
		age = opts.Age
	}

	formatter.VerboseLog("Building person name=%q age=%d", name, age)
	return person.New(name, age), nil
}
