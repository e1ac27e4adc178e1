package model

type HealthStatus struct {
	Status        string `json:"status"`
	MappingLoaded bool   `json:"mappingLoaded"`
	CachedItems   int    `json:"cachedItems"`
}
