package strato

// ServerCreateRequest is the body for creating a server.
type ServerCreateRequest struct {
	Name             string            `json:"name"`
	ServerType       string            `json:"server_type"`
	Image            string            `json:"image"`
	SSHKeys          []int64           `json:"ssh_keys,omitempty"`
	Datacenter       string            `json:"datacenter,omitempty"`
	Location         string            `json:"location,omitempty"`
	StartAfterCreate *bool             `json:"start_after_create,omitempty"`
	UserData         string            `json:"user_data,omitempty"`
	Volumes          []int64           `json:"volumes,omitempty"`
	Networks         []int64           `json:"networks,omitempty"`
	Automount        *bool             `json:"automount,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"`
}

// ServerUpdateRequest is the body for updating a server.
type ServerUpdateRequest struct {
	Name   string            `json:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
}

// ServerResetPasswordResult carries the action and the newly generated root
// password returned by a password reset.
type ServerResetPasswordResult struct {
	Action       *Action `json:"action"        yaml:"action"`
	RootPassword string  `json:"root_password" yaml:"root_password"`
}

// ServerEnableRescueRequest is the body for enabling the rescue system.
type ServerEnableRescueRequest struct {
	Type    string  `json:"type,omitempty"`
	SSHKeys []int64 `json:"ssh_keys,omitempty"`
}

// ServerEnableRescueResult carries the action and the rescue system root
// password.
type ServerEnableRescueResult struct {
	Action       *Action `json:"action"        yaml:"action"`
	RootPassword string  `json:"root_password" yaml:"root_password"`
}

// ServerCreateImageRequest is the body for creating an image from a server.
type ServerCreateImageRequest struct {
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ServerRebuildRequest is the body for rebuilding a server from an image.
type ServerRebuildRequest struct {
	Image string `json:"image"`
}

// ServerChangeTypeRequest is the body for changing a server's type.
type ServerChangeTypeRequest struct {
	ServerType  string `json:"server_type"`
	UpgradeDisk bool   `json:"upgrade_disk"`
}

// ServerAttachISORequest is the body for attaching an ISO to a server.
type ServerAttachISORequest struct {
	ISO string `json:"iso"`
}

// ChangeDNSPtrRequest is the body for changing a reverse DNS entry. A nil
// DNSPtr resets the entry to the provider default.
type ChangeDNSPtrRequest struct {
	IP     string  `json:"ip"`
	DNSPtr *string `json:"dns_ptr"`
}

// FloatingIPCreateRequest is the body for creating a floating IP.
type FloatingIPCreateRequest struct {
	Type         string            `json:"type"`
	Server       *int64            `json:"server,omitempty"`
	HomeLocation string            `json:"home_location,omitempty"`
	Name         string            `json:"name,omitempty"`
	Description  string            `json:"description,omitempty"`
	Labels       map[string]string `json:"labels,omitempty"`
}

// FloatingIPUpdateRequest is the body for updating a floating IP.
type FloatingIPUpdateRequest struct {
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// SSHKeyCreateRequest is the body for uploading an SSH key.
type SSHKeyCreateRequest struct {
	Name      string            `json:"name"`
	PublicKey string            `json:"public_key"`
	Labels    map[string]string `json:"labels,omitempty"`
}

// SSHKeyUpdateRequest is the body for updating an SSH key.
type SSHKeyUpdateRequest struct {
	Name   string            `json:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
}

// VolumeCreateRequest is the body for creating a volume.
type VolumeCreateRequest struct {
	Name      string            `json:"name"`
	Size      int               `json:"size"`
	Server    *int64            `json:"server,omitempty"`
	Location  string            `json:"location,omitempty"`
	Format    string            `json:"format,omitempty"`
	Automount *bool             `json:"automount,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
}

// VolumeUpdateRequest is the body for updating a volume.
type VolumeUpdateRequest struct {
	Name   string            `json:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
}

// VolumeAttachRequest is the body for attaching a volume to a server.
type VolumeAttachRequest struct {
	Server    int64 `json:"server"`
	Automount *bool `json:"automount,omitempty"`
}

// NetworkCreateRequest is the body for creating a network.
type NetworkCreateRequest struct {
	Name    string            `json:"name"`
	IPRange string            `json:"ip_range"`
	Subnets []NetworkSubnet   `json:"subnets,omitempty"`
	Routes  []NetworkRoute    `json:"routes,omitempty"`
	Labels  map[string]string `json:"labels,omitempty"`
}

// NetworkUpdateRequest is the body for updating a network.
type NetworkUpdateRequest struct {
	Name   string            `json:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
}

// ImageUpdateRequest is the body for updating an image.
type ImageUpdateRequest struct {
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}
