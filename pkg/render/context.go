package render

// Context is the data handed to the module template.
type Context struct {
	Resource           string   `json:"resource"`
	ResourceCapital    string   `json:"resource_capitalized"`
	ResourcePluralized string   `json:"resource_pluralized"`
	Code               []string `json:"code"`
	Docs               string   `json:"docs"`
	ModuleName         string   `json:"module_name"`
	BaseClass          string   `json:"base_class"`
	ModuleType         string   `json:"module_type"`
}
