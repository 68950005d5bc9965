package geology

// ColumnMap names the attribute columns of the map data provider's feature
// collections. Surveys disagree on schemas, so every consumer of raw
// features goes through this mapping rather than hard-coded column names.
type ColumnMap struct {
	UnitName    string `yaml:"unitname"`
	MinAge      string `yaml:"min_age"`
	MaxAge      string `yaml:"max_age"`
	Group       string `yaml:"group"`
	Supergroup  string `yaml:"supergroup"`
	Description string `yaml:"description"`

	FaultName   string `yaml:"fault_name"`
	FaultDip    string `yaml:"fault_dip"`
	FaultDipDir string `yaml:"fault_dipdir"`

	Dip    string `yaml:"dip"`
	DipDir string `yaml:"dipdir"`
}

// DefaultColumnMap returns the column naming of common survey exports.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		UnitName:    "UNITNAME",
		MinAge:      "MIN_AGE",
		MaxAge:      "MAX_AGE",
		Group:       "GROUP",
		Supergroup:  "SUPERGROUP",
		Description: "DESCRIPTION",
		FaultName:   "NAME",
		FaultDip:    "DIP",
		FaultDipDir: "DIPDIR",
		Dip:         "DIP",
		DipDir:      "DIPDIR",
	}
}

// merged returns cm with empty fields replaced by the defaults, so partial
// mappings in project files only override what they name.
func (cm ColumnMap) merged() ColumnMap {
	def := DefaultColumnMap()
	pick := func(v, d string) string {
		if v == "" {
			return d
		}

		return v
	}

	return ColumnMap{
		UnitName:    pick(cm.UnitName, def.UnitName),
		MinAge:      pick(cm.MinAge, def.MinAge),
		MaxAge:      pick(cm.MaxAge, def.MaxAge),
		Group:       pick(cm.Group, def.Group),
		Supergroup:  pick(cm.Supergroup, def.Supergroup),
		Description: pick(cm.Description, def.Description),
		FaultName:   pick(cm.FaultName, def.FaultName),
		FaultDip:    pick(cm.FaultDip, def.FaultDip),
		FaultDipDir: pick(cm.FaultDipDir, def.FaultDipDir),
		Dip:         pick(cm.Dip, def.Dip),
		DipDir:      pick(cm.DipDir, def.DipDir),
	}
}
