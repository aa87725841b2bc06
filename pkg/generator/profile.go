package generator

import (
	"github.com/goliatone/go-apinsible/pkg/naming"
	"github.com/goliatone/go-apinsible/pkg/params"
)

// Profile describes one module type: which remote action is introspected,
// which leaves are skipped and how the generated class is named.
type Profile struct {
	Name         string
	Mode         params.Mode
	Action       string
	Skip         params.SkipSet
	BaseClass    string
	ModulePrefix string
	ModuleSuffix string
}

// ModuleName returns the generated class name for resource.
func (p Profile) ModuleName(resource string) string {
	return naming.ModuleName(resource, p.ModulePrefix, p.ModuleSuffix)
}

// Rules returns the params rules for this profile.
func (p Profile) Rules() params.Rules {
	return params.Rules{Mode: p.Mode, Skip: p.Skip, Types: params.DefaultTypeMap()}
}

// ResourceProfile generates entity modules from the create action.
func ResourceProfile() Profile {
	return Profile{
		Name:         string(params.ModeResource),
		Mode:         params.ModeResource,
		Action:       "create",
		Skip:         params.ResourceSkipSet(),
		BaseClass:    "ForemanTaxonomicEntityAnsibleModule",
		ModulePrefix: naming.DefaultPrefix,
		ModuleSuffix: naming.ModuleSuffix,
	}
}

// InfoProfile generates info modules from the index action.
func InfoProfile() Profile {
	return Profile{
		Name:         string(params.ModeInfo),
		Mode:         params.ModeInfo,
		Action:       "index",
		Skip:         params.InfoSkipSet(),
		BaseClass:    "ForemanInfoAnsibleModule",
		ModulePrefix: naming.DefaultPrefix,
		ModuleSuffix: naming.InfoSuffix,
	}
}
