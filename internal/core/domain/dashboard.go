package domain

// SidebarItem is one navigation entry of a dashboard shell.
type SidebarItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Metric is a headline figure on an analytics or performance view.
type Metric struct {
	Title  string `json:"title" yaml:"title"`
	Value  string `json:"value" yaml:"value"`
	Detail string `json:"detail" yaml:"detail"`
}

// Feedback is a citizen's rating of a resolved issue.
type Feedback struct {
	ID      int    `json:"id" yaml:"id"`
	Citizen string `json:"citizen" yaml:"citizen"`
	Issue   string `json:"issue" yaml:"issue"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
	Date    string `json:"date" yaml:"date"`
}

// BlogPost is an awareness article.
type BlogPost struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	Date     string `json:"date" yaml:"date"`
	ReadTime string `json:"readTime" yaml:"readTime"`
	Category string `json:"category" yaml:"category"`
}

// PartnerMessage is an entry of the partner communication thread.
type PartnerMessage struct {
	ID        int    `json:"id" yaml:"id"`
	From      string `json:"from" yaml:"from"`
	Message   string `json:"message" yaml:"message"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Type      string `json:"type" yaml:"type"`
}

// Ack is the acknowledgement returned by actions that have no durable effect.
type Ack struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Activity is a line of the citizen's recent activity feed.
type Activity struct {
	Title  string `json:"title" yaml:"title"`
	When   string `json:"when" yaml:"when"`
	Status string `json:"status" yaml:"status"`
}

// HomeSummary is the landing view of a dashboard shell.
type HomeSummary struct {
	Stats    []Metric   `json:"stats" yaml:"stats"`
	Activity []Activity `json:"activity,omitempty" yaml:"activity"`
	Issues   []Issue    `json:"issues,omitempty" yaml:"issues"`
	Tasks    []Task     `json:"tasks,omitempty" yaml:"tasks"`
}
