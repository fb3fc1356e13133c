package config

// Config is a formkit.yaml document: a theme and the controls a gallery or
// form renders.
type Config struct {
	Version string `yaml:"version,omitempty" validate:"omitempty,semver"`
	Title   string `yaml:"title,omitempty" validate:"max=100"`
	Theme   string `yaml:"theme,omitempty" validate:"omitempty,theme_name"`

	// Fields is shorthand for one section titled after the document.
	Fields   []Field   `yaml:"fields,omitempty" validate:"required_without=Sections,dive"`
	Sections []Section `yaml:"sections,omitempty" validate:"required_without=Fields,dive"`
}

// Section is a titled group of fields.
type Section struct {
	Title  string  `yaml:"title" validate:"required,max=100"`
	Fields []Field `yaml:"fields" validate:"required,min=1,dive"`
}

// Field declares one control.
type Field struct {
	ID          string `yaml:"id" validate:"required,field_id"`
	Kind        string `yaml:"kind,omitempty" validate:"omitempty,kind"`
	Label       string `yaml:"label,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Help        string `yaml:"help,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Prefix      string `yaml:"prefix,omitempty"`
	Suffix      string `yaml:"suffix,omitempty"`
	UploadText  string `yaml:"upload_text,omitempty"`

	Variant string `yaml:"variant,omitempty" validate:"omitempty,variant"`
	State   string `yaml:"state,omitempty" validate:"omitempty,visual_state"`
	Message string `yaml:"message,omitempty"`
	Value   string `yaml:"value,omitempty"`

	Limit     int      `yaml:"limit,omitempty" validate:"gte=0"`
	Rows      int      `yaml:"rows,omitempty" validate:"gte=0,lte=20"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	Required  bool     `yaml:"required,omitempty"`
	Clearable bool     `yaml:"clearable,omitempty"`
	Multiple  bool     `yaml:"multiple,omitempty"`

	// Mask lists built-in masks applied left to right, comma separated:
	// digits, upper, no_spaces, phone.
	Mask string `yaml:"mask,omitempty" validate:"omitempty,mask"`
	// Validate is a validator tag rule such as "required,min=3" applied
	// after the kind's own check.
	Validate string `yaml:"validate,omitempty" validate:"omitempty,validator_tag"`

	HideIcon    bool     `yaml:"hide_icon,omitempty"`
	HideToggle  bool     `yaml:"hide_toggle,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// AllSections returns Sections, with Fields folded in first as a section
// titled after the document.
func (c *Config) AllSections() []Section {
	if len(c.Fields) == 0 {
		return c.Sections
	}
	title := c.Title
	if title == "" {
		title = "Fields"
	}
	out := make([]Section, 0, len(c.Sections)+1)
	out = append(out, Section{Title: title, Fields: c.Fields})
	return append(out, c.Sections...)
}
