package config

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Config represents the entire user configuration file.
// It stores presets for the demo engines and key overrides.
type Config struct {
	Version    int                 `yaml:"version"`
	Pagination *PaginationPreset   `yaml:"pagination,omitempty"`
	Slider     *SliderPreset       `yaml:"slider,omitempty"`
	Tabs       *TabsPreset         `yaml:"tabs,omitempty"`
	Keys       map[string][]string `yaml:"keys,omitempty"` // Action name -> terminal keys
	Log        *LogPrefs           `yaml:"log,omitempty"`
}

// PaginationPreset configures the pagination demo.
type PaginationPreset struct {
	TotalItems    int  `yaml:"total_items"`
	PageSize      int  `yaml:"page_size"`
	Siblings      int  `yaml:"siblings"`
	ShowFirstLast bool `yaml:"show_first_last"`
	Cursor        bool `yaml:"cursor"` // Drive the navigator in cursor mode
}

// SliderPreset configures the slider demo.
type SliderPreset struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Step     float64 `yaml:"step"`
	Default  float64 `yaml:"default"`
	Vertical bool    `yaml:"vertical"`
}

// TabsPreset configures the tabs demo.
type TabsPreset struct {
	Orientation string    `yaml:"orientation"` // "horizontal" or "vertical"
	Activation  string    `yaml:"activation"`  // "automatic" or "manual"
	Default     string    `yaml:"default,omitempty"`
	Items       []TabItem `yaml:"items"`
}

// TabItem is one tab of the tabs demo.
type TabItem struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Body     string `yaml:"body,omitempty"`
}

// LogPrefs controls where the interactive demo writes its log.
type LogPrefs struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	c := &Config{Version: CurrentVersion}
	c.fillDefaults()
	return c
}

func defaultPagination() *PaginationPreset {
	return &PaginationPreset{TotalItems: 240, PageSize: 10, Siblings: 1, ShowFirstLast: true}
}

func defaultSlider() *SliderPreset {
	return &SliderPreset{Min: 0, Max: 100, Step: 5, Default: 50}
}

func defaultTabs() *TabsPreset {
	return &TabsPreset{
		Orientation: "horizontal",
		Activation:  "automatic",
		Items: []TabItem{
			{ID: "overview", Label: "Overview", Body: "Arrow keys move between tabs and select them."},
			{ID: "activity", Label: "Activity", Body: "Disabled tabs are skipped while navigating."},
			{ID: "billing", Label: "Billing", Disabled: true},
			{ID: "settings", Label: "Settings", Body: "Home and End jump to the first and last tab."},
		},
	}
}

func defaultLog() *LogPrefs {
	return &LogPrefs{Level: "warn"}
}

// fillDefaults replaces missing sections with their defaults.
func (c *Config) fillDefaults() {
	if c.Pagination == nil {
		c.Pagination = defaultPagination()
	}
	if c.Slider == nil {
		c.Slider = defaultSlider()
	}
	if c.Tabs == nil {
		c.Tabs = defaultTabs()
	}
	if c.Keys == nil {
		c.Keys = make(map[string][]string)
	}
	if c.Log == nil {
		c.Log = defaultLog()
	}
}

// TabItems returns the configured tabs, or the defaults when none are set.
func (p *TabsPreset) TabItems() []TabItem {
	if p == nil || len(p.Items) == 0 {
		return defaultTabs().Items
	}
	return p.Items
}
