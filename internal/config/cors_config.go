package config

import (
	"sort"
	"strings"
)

var _ CorsConfig = Settings{}

type AllowedOrigins map[string]struct{}
type nullValue = struct{}

func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	_, ok := a[origin]
	return ok
}

func (a AllowedOrigins) String() string {
	var origins []string
	for k := range a {
		origins = append(origins, k)
	}
	sort.Strings(origins)
	return strings.Join(origins, ", ")
}

func (s Settings) GetAllowedOrigins() AllowedOrigins {
	origins := make(AllowedOrigins, len(s.AllowedOriginList))
	for _, o := range s.AllowedOriginList {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = nullValue{}
		}
	}
	return origins
}

func (Settings) GetAllowedMethods() string {
	return "GET, POST, PUT, DELETE"
}

func (Settings) GetAllowedHeaders() string {
	return "Content-Type, Authorization"
}
