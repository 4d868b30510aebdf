package models

// PanelUser is the admin-API view of a panel account located by email.
type PanelUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PanelAccount is the per-user API view of the caller's own account.
type PanelAccount struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Language  string `json:"language"`
	Admin     bool   `json:"admin"`
}

// PanelServer is a server resource owned by the logged-in account.
type PanelServer struct {
	ID     string `json:"id"`
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Node   string `json:"node"`
	IP     string `json:"ip,omitempty"`
	Port   int    `json:"port,omitempty"`
}

// Allocation is a remote-managed binding of a network address and port on a
// compute node, assignable to at most one server. Allocations are never
// cached locally; they are re-fetched on each resolution attempt.
type Allocation struct {
	ID       int64  `json:"id"`
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Assigned bool   `json:"assigned"`
}

// EggVariable is one template-declared environment variable.
type EggVariable struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	EnvVariable  string `json:"env_variable"`
	DefaultValue string `json:"default_value"`
	UserViewable bool   `json:"user_viewable"`
	UserEditable bool   `json:"user_editable"`
	Rules        string `json:"rules"`
}

// EggConfig is the remote server blueprint fetched per provisioning
// attempt: container image, startup command, and declared variables.
type EggConfig struct {
	DockerImage string        `json:"docker_image"`
	Startup     string        `json:"startup"`
	Variables   []EggVariable `json:"variables"`
}

// ServerLimits mirrors the panel's limits object on server creation.
type ServerLimits struct {
	Memory int `json:"memory"`
	Swap   int `json:"swap"`
	Disk   int `json:"disk"`
	IO     int `json:"io"`
	CPU    int `json:"cpu"`
}

// ServerFeatureLimits mirrors the panel's feature_limits object.
type ServerFeatureLimits struct {
	Databases   int `json:"databases"`
	Backups     int `json:"backups"`
	Allocations int `json:"allocations"`
}

// ServerAllocationBundle names the primary allocation and any additional
// ones attached at creation time.
type ServerAllocationBundle struct {
	Default    int64   `json:"default"`
	Additional []int64 `json:"additional"`
}

// CreateServerRequest is the admin-API payload for creating a server.
type CreateServerRequest struct {
	Name          string                 `json:"name"`
	User          int64                  `json:"user"`
	Egg           int64                  `json:"egg"`
	DockerImage   string                 `json:"docker_image"`
	Startup       string                 `json:"startup"`
	Environment   map[string]string      `json:"environment"`
	Limits        ServerLimits           `json:"limits"`
	FeatureLimits ServerFeatureLimits    `json:"feature_limits"`
	Allocation    ServerAllocationBundle `json:"allocation"`
}

// CreatedServer is the subset of the creation response the application
// cares about: the public identifier plus metadata kept for logging.
type CreatedServer struct {
	ID           int64  `json:"id"`
	Identifier   string `json:"identifier"`
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	AllocationID int64  `json:"allocation"`
}
