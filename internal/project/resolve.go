package project

// Prompter asks the user for missing values.
type Prompter interface {
	Select(title string, options []string, def string) (string, error)
	Text(title, def string) (string, error)
	Confirm(title string, def bool) (bool, error)
}

// Prompt titles, in the order they are asked.
const (
	PromptType         = "Project type"
	PromptName         = "Project name (folder)"
	PromptDevcontainer = "Add DevContainer?"
	PromptDevstack     = "Add devstack (postgres/mongo/clickhouse)?"
	PromptDBT          = "Add dbt stub?"
	PromptInitGit      = "Init git repo?"
	PromptProceed      = "Proceed?"
)

// Input is what the user supplied on the command line. Empty strings and
// nil booleans are unset and get prompted for.
type Input struct {
	Type         string
	Name         string
	Dir          string // already resolved base directory
	Devcontainer *bool
	Devstack     *bool
	DBT          *bool
	InitGit      *bool
	NoHooks      bool

	// DefaultType preselects the type prompt; zero means DefaultType.
	DefaultType Type
}

// FeatureDefaults returns the prompt defaults for the four toggles of a
// project type. Devstack and dbt default on only for data projects.
func FeatureDefaults(t Type) (devcontainer, devstack, dbt, initGit bool) {
	isData := t == TypeData
	return true, isData, isData, true
}

// Resolve fills every unset value of in, prompting through p, and returns
// the validated option set. Nothing is prompted for values already given.
func Resolve(in Input, p Prompter) (Options, error) {
	opts := Options{
		Name:    in.Name,
		Dir:     in.Dir,
		NoHooks: in.NoHooks,
	}

	if in.Type != "" {
		t, err := ParseType(in.Type)
		if err != nil {
			return Options{}, err
		}
		opts.Type = t
	} else {
		def := in.DefaultType
		if def == "" {
			def = DefaultType
		}
		choice, err := p.Select(PromptType, TypeNames(), string(def))
		if err != nil {
			return Options{}, err
		}
		t, err := ParseType(choice)
		if err != nil {
			return Options{}, err
		}
		opts.Type = t
	}

	if opts.Name == "" {
		name, err := p.Text(PromptName, DefaultName)
		if err != nil {
			return Options{}, err
		}
		opts.Name = name
	}

	defDevcontainer, defDevstack, defDBT, defInitGit := FeatureDefaults(opts.Type)

	toggles := []struct {
		set   *bool
		title string
		def   bool
		dst   *bool
	}{
		{in.Devcontainer, PromptDevcontainer, defDevcontainer, &opts.Devcontainer},
		{in.Devstack, PromptDevstack, defDevstack, &opts.Devstack},
		{in.DBT, PromptDBT, defDBT, &opts.DBT},
		{in.InitGit, PromptInitGit, defInitGit, &opts.InitGit},
	}
	for _, tg := range toggles {
		if tg.set != nil {
			*tg.dst = *tg.set
			continue
		}
		v, err := p.Confirm(tg.title, tg.def)
		if err != nil {
			return Options{}, err
		}
		*tg.dst = v
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
