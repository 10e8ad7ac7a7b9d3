// Package factors - Factor repository
package factors

// Repository resolves region and industry adjustment factors.
// Implementations must be safe for concurrent reads; the engine treats the
// tables as immutable for the lifetime of a calculation batch.
type Repository interface {
	// RegionFactor returns the factors for a region key, falling back to
	// DefaultRegion for unknown keys
	RegionFactor(key string) RegionFactor

	// IndustryProfile returns the profile for an industry key, falling back
	// to DefaultIndustry for unknown keys
	IndustryProfile(key string) IndustryProfile

	// Regions lists the known region keys
	Regions() []string

	// Industries lists the known industry keys
	Industries() []string
}

// InMemoryRepository is the default Repository over immutable maps
type InMemoryRepository struct {
	regions    map[string]RegionFactor
	industries map[string]IndustryProfile
}

// NewInMemoryRepository creates a repository with the built-in tables
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		regions:    builtinRegions(),
		industries: builtinIndustries(),
	}
}

// NewRepositoryWithTables creates a repository over caller-supplied tables.
// The caller must not mutate the maps afterwards.
func NewRepositoryWithTables(regions map[string]RegionFactor, industries map[string]IndustryProfile) *InMemoryRepository {
	return &InMemoryRepository{
		regions:    regions,
		industries: industries,
	}
}

// RegionFactor implements Repository
func (r *InMemoryRepository) RegionFactor(key string) RegionFactor {
	if f, ok := r.regions[key]; ok {
		return f
	}
	return r.regions[DefaultRegion]
}

// IndustryProfile implements Repository
func (r *InMemoryRepository) IndustryProfile(key string) IndustryProfile {
	if p, ok := r.industries[key]; ok {
		return p
	}
	return r.industries[DefaultIndustry]
}

// Regions implements Repository
func (r *InMemoryRepository) Regions() []string {
	keys := make([]string, 0, len(r.regions))
	for k := range r.regions {
		keys = append(keys, k)
	}
	return keys
}

// Industries implements Repository
func (r *InMemoryRepository) Industries() []string {
	keys := make([]string, 0, len(r.industries))
	for k := range r.industries {
		keys = append(keys, k)
	}
	return keys
}
