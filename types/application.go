package types

// App types as reported by the application list endpoint.
const (
	AppTypeMDX        = "MDX"
	AppTypeEnterprise = "Enterprise"
	AppTypeAppStore   = "App Store App"
	AppTypeWebLink    = "Web Link"
)

// Classification is the protocol-level tag derived from an appType. It
// selects the URL shape for the application detail endpoint.
type Classification string

const (
	ClassificationMobile   Classification = "mobile"
	ClassificationAppStore Classification = "appstore"
	ClassificationNone     Classification = ""
)

var classifications = map[string]Classification{
	AppTypeMDX:        ClassificationMobile,
	AppTypeEnterprise: ClassificationMobile,
	AppTypeAppStore:   ClassificationAppStore,
	AppTypeWebLink:    ClassificationNone,
}

// Classify maps an appType to its classification. Unknown app types
// classify as none.
func Classify(appType string) Classification {
	return classifications[appType]
}

// HasDetail reports whether applications with this classification carry a
// detail record on the server. App Store apps have an "appstore"
// classification but no policy container, so no detail is fetched for them.
func (c Classification) HasDetail() bool {
	return c == ClassificationMobile
}

// ApplicationSummary is one row of the application list endpoint.
type ApplicationSummary struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Disabled    bool     `json:"disabled"`
	AppType     string   `json:"appType"`
	Categories  []string `json:"categories"`
	Workflow    string   `json:"workflow"`
}

// ApplicationDetail is the full application container returned by the
// detail endpoint for managed (mobile) applications. IOS and Android are
// independently optional; a nil pointer means the platform is not
// configured for the application.
type ApplicationDetail struct {
	ApplicationSummary
	IconData   string          `json:"iconData"`
	Roles      []string        `json:"roles"`
	VppAccount string          `json:"vppAccount"`
	IOS        *PlatformConfig `json:"ios"`
	Android    *PlatformConfig `json:"android"`
}

// PlatformConfig is the per-OS configuration block of an application
// container.
type PlatformConfig struct {
	DisplayName           string   `json:"displayName"`
	Description           string   `json:"description"`
	Paid                  bool     `json:"paid"`
	RemoveWithMdm         bool     `json:"removeWithMdm"`
	PreventBackup         bool     `json:"preventBackup"`
	ChangeManagementState bool     `json:"changeManagementState"`
	AssociateToDevice     bool     `json:"associateToDevice"`
	CanAssociateToDevice  bool     `json:"canAssociateToDevice"`
	AppVersion            string   `json:"appVersion"`
	MinOsVersion          string   `json:"minOsVersion"`
	MaxOsVersion          string   `json:"maxOsVersion"`
	ExcludedDevices       string   `json:"excludedDevices"`
	Policies              []Policy `json:"policies"`
}

// Policy is a single named configuration rule applied to an application on
// a given OS platform. Order within a PlatformConfig is the server's order.
type Policy struct {
	PolicyName     string `json:"policyName"`
	PolicyValue    string `json:"policyValue"`
	PolicyType     string `json:"policyType"`
	PolicyCategory string `json:"policyCategory"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Units          string `json:"units"`
	Explanation    string `json:"explanation"`
}

// Application is the aggregated record for one application: the list
// summary, plus the detail container when the app's classification carries
// one and the detail fetch succeeded.
type Application struct {
	ApplicationSummary
	Detail *ApplicationDetail
}
