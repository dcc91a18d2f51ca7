package mock

import "github.com/jkoval/driftex"

var _ driftex.SelectorRegistry = (*SelectorRegistry)(nil)

// SelectorRegistry is a mock implementation of driftex.SelectorRegistry.
type SelectorRegistry struct {
	GetSectionFn       func(name string) (driftex.SectionSelectors, bool)
	ActiveVersionFn    func() driftex.SelectorVersion
	SetActiveVersionFn func(id string) bool
	RegisterFn         func(version driftex.SelectorVersion)
	LoadFn             func(path string) error
	SaveFn             func(path string) error
}

func (r *SelectorRegistry) GetSection(name string) (driftex.SectionSelectors, bool) {
	return r.GetSectionFn(name)
}

func (r *SelectorRegistry) ActiveVersion() driftex.SelectorVersion {
	return r.ActiveVersionFn()
}

func (r *SelectorRegistry) SetActiveVersion(id string) bool {
	return r.SetActiveVersionFn(id)
}

func (r *SelectorRegistry) Register(version driftex.SelectorVersion) {
	r.RegisterFn(version)
}

func (r *SelectorRegistry) Load(path string) error {
	return r.LoadFn(path)
}

func (r *SelectorRegistry) Save(path string) error {
	return r.SaveFn(path)
}
