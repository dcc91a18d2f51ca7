package driftex

// maxKeyFieldLen guards against accidentally capturing an entire unrelated
// text blob as a title or name.
const maxKeyFieldLen = 250

// validKeyField reports whether a record's decision-relevant field is
// non-empty and below the sane length ceiling.
func validKeyField(s string) bool {
	return s != "" && len(s) < maxKeyFieldLen
}

// Position is one role held within an Experience. Single-position
// experiences hold exactly one.
type Position struct {
	Title          string `json:"title"`
	EmploymentType string `json:"employmentType,omitempty"`
	FromDate       string `json:"fromDate,omitempty"`
	ToDate         string `json:"toDate,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Location       string `json:"location,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Experience is one employer with one or more positions.
type Experience struct {
	Company    string     `json:"company"`
	CompanyURL string     `json:"companyUrl,omitempty"`
	Positions  []Position `json:"positions"`
}

// Validate reports whether the experience is acceptable. The company is
// the key field, but entries without an employer (the second line read as
// a date) are still kept when the leading position carries a usable title.
func (e Experience) Validate() bool {
	if len(e.Positions) == 0 {
		return false
	}
	if validKeyField(e.Company) {
		return true
	}
	return validKeyField(e.Positions[0].Title)
}

// Education is one school entry.
type Education struct {
	School       string `json:"school"`
	SchoolURL    string `json:"schoolUrl,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	FromYear     string `json:"fromYear,omitempty"`
	ToYear       string `json:"toYear,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Validate reports whether the education entry is acceptable.
func (e Education) Validate() bool {
	return validKeyField(e.School)
}

// Accomplishment is a generic dated achievement (project, honor, language,
// certification, publication). Category records which tab it came from.
type Accomplishment struct {
	Category    string `json:"category,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Validate reports whether the accomplishment is acceptable.
func (a Accomplishment) Validate() bool {
	return validKeyField(a.Title)
}

// Patent is a granted or pending patent entry.
type Patent struct {
	Title       string `json:"title"`
	Office      string `json:"office,omitempty"`
	Number      string `json:"number,omitempty"`
	IssuedDate  string `json:"issuedDate,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Validate reports whether the patent is acceptable.
func (p Patent) Validate() bool {
	return validKeyField(p.Title)
}

// Contact record types produced by the contact parser.
const (
	ContactProfile   = "profile"
	ContactEmail     = "email"
	ContactPhone     = "phone"
	ContactWebsite   = "website"
	ContactBirthday  = "birthday"
	ContactAddress   = "address"
	ContactConnected = "connected"
)

// Contact is one entry from a contact-details panel.
type Contact struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Validate reports whether the contact entry is acceptable.
func (c Contact) Validate() bool {
	return c.Type != "" && validKeyField(c.Value)
}

// Interest is one followed entity (company, group, school, influencer).
type Interest struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Validate reports whether the interest is acceptable.
func (i Interest) Validate() bool {
	return validKeyField(i.Name)
}

// TopCard is the identity block at the top of a profile.
type TopCard struct {
	Name      string `json:"name"`
	Headline  string `json:"headline,omitempty"`
	Location  string `json:"location,omitempty"`
	About     string `json:"about,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Validate reports whether the top card is acceptable.
func (t TopCard) Validate() bool {
	return validKeyField(t.Name)
}
