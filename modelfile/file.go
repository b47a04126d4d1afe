package modelfile

type fileDoc struct {
	Modules []*moduleDoc `yaml:"modules"`
}

type moduleDoc struct {
	Name        string `yaml:"name"`
	Namespace   string `yaml:"namespace"`
	Prefix      string `yaml:"prefix"`
	YangVersion string `yaml:"yang-version"`

	Imports  []*importDoc  `yaml:"imports"`
	Includes []*includeDoc `yaml:"includes"`

	Organization string `yaml:"organization"`
	Contact      string `yaml:"contact"`
	Description  string `yaml:"description"`
	Reference    string `yaml:"reference"`

	Revisions  []*revisionDoc `yaml:"revisions"`
	Identities []*identityDoc `yaml:"identities"`
	Typedefs   []*typedefDoc  `yaml:"typedefs"`
	Nodes      []*nodeDoc     `yaml:"nodes"`
}

type importDoc struct {
	Module       string `yaml:"module"`
	Prefix       string `yaml:"prefix"`
	RevisionDate string `yaml:"revision-date"`
}

type includeDoc struct {
	Submodule    string `yaml:"submodule"`
	RevisionDate string `yaml:"revision-date"`
}

type revisionDoc struct {
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Reference   string `yaml:"reference"`
}

// metaDoc collects the status, description and reference
// fields most statements have.
type metaDoc struct {
	Status      string
	Description string
	Reference   string
}

func (d *identityDoc) meta() metaDoc { return metaDoc{d.Status, d.Description, d.Reference} }
func (d *typedefDoc) meta() metaDoc  { return metaDoc{d.Status, d.Description, d.Reference} }
func (d *enumDoc) meta() metaDoc     { return metaDoc{d.Status, d.Description, d.Reference} }
func (d *bitDoc) meta() metaDoc      { return metaDoc{d.Status, d.Description, d.Reference} }
func (d *nodeDoc) meta() metaDoc     { return metaDoc{d.Status, d.Description, d.Reference} }

type identityDoc struct {
	Name        string `yaml:"name"`
	Base        string `yaml:"base"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
	Reference   string `yaml:"reference"`
}

type typedefDoc struct {
	Name        string   `yaml:"name"`
	Type        *typeDoc `yaml:"type"`
	Status      string   `yaml:"status"`
	Description string   `yaml:"description"`
	Reference   string   `yaml:"reference"`
}

type typeDoc struct {
	Name string `yaml:"name"`

	Enums           []*enumDoc `yaml:"enums"`
	Base            string     `yaml:"base"`
	Bits            []*bitDoc  `yaml:"bits"`
	Path            string     `yaml:"path"`
	RequireInstance *bool      `yaml:"require-instance"`
	Types           []*typeDoc `yaml:"types"`
	FractionDigits  int        `yaml:"fraction-digits"`
	Range           string     `yaml:"range"`
	Length          string     `yaml:"length"`
	Patterns        []string   `yaml:"patterns"`
}

// UnmarshalYAML accepts both a bare type name and a mapping.
func (t *typeDoc) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	if name, ok := v.(string); ok {
		t.Name = name
		return nil
	}
	type plain typeDoc
	return unmarshal((*plain)(t))
}

// fields lists the restriction fields set in t.
func (t *typeDoc) fields() []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(len(t.Enums) > 0, "enums")
	add(t.Base != "", "base")
	add(len(t.Bits) > 0, "bits")
	add(t.Path != "", "path")
	add(t.RequireInstance != nil, "require-instance")
	add(len(t.Types) > 0, "types")
	add(t.FractionDigits != 0, "fraction-digits")
	add(t.Range != "", "range")
	add(t.Length != "", "length")
	add(len(t.Patterns) > 0, "patterns")
	return fields
}

type enumDoc struct {
	Name        string `yaml:"name"`
	Value       *int32 `yaml:"value"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
	Reference   string `yaml:"reference"`
}

type bitDoc struct {
	Name        string  `yaml:"name"`
	Position    *uint32 `yaml:"position"`
	Status      string  `yaml:"status"`
	Description string  `yaml:"description"`
	Reference   string  `yaml:"reference"`
}

type nodeDoc struct {
	Container string `yaml:"container"`
	Choice    string `yaml:"choice"`
	Leaf      string `yaml:"leaf"`
	LeafList  string `yaml:"leaf-list"`
	List      string `yaml:"list"`
	Grouping  string `yaml:"grouping"`
	Uses      string `yaml:"uses"`

	Config      *bool  `yaml:"config"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
	Reference   string `yaml:"reference"`

	Type      *typeDoc `yaml:"type"`
	Units     string   `yaml:"units"`
	Default   string   `yaml:"default"`
	Mandatory bool     `yaml:"mandatory"`
	Presence  string   `yaml:"presence"`

	// Key lists the key leaves separated by spaces.
	Key         string `yaml:"key"`
	MinElements int    `yaml:"min-elements"`
	MaxElements int    `yaml:"max-elements"`
	OrderedBy   string `yaml:"ordered-by"`

	Typedefs []*typedefDoc `yaml:"typedefs"`
	Children []*nodeDoc    `yaml:"children"`
}
