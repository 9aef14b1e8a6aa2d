package consts

// Characters with a meaning in route fragments and navigation targets.
const (
	RuneFwdSlash = '/'
	RuneColon    = ':'
	RuneQuestion = '?'
	RuneHash     = '#'
)

const (
	StrSlash = "/"

	// ConstraintOpeners start a constraint annotation on a parameter segment,
	// as in ":id{uuid}" or ":id<i32>".
	ConstraintOpeners = "{<"
)

const (
	// MaxDepth is the deepest nesting a route tree may have.
	// Build rejects deeper trees so resolution recursion stays bounded.
	MaxDepth = 32

	// DefaultCacheCapacity is the number of resolutions kept by the LRU cache.
	DefaultCacheCapacity = 100

	// MetricsNamespace prefixes every exported Prometheus metric.
	MetricsNamespace = "rnav"
)

// Route table file formats understood by routecfg.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)
