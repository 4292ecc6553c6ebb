package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

const (
	contactAck    = "Message sent successfully! We will get back to you soon."
	newsletterAck = "Thank you for subscribing to our newsletter!"
)

var sidebars = map[domain.Role][]domain.SidebarItem{
	domain.RoleCitizen: {
		{Path: "", Label: "Dashboard Home"},
		{Path: "report-issue", Label: "Report Issue"},
		{Path: "check-updates", Label: "Check Updates"},
		{Path: "community", Label: "Community Wall"},
		{Path: "blog", Label: "Blog & Awareness"},
		{Path: "contact", Label: "Contact"},
	},
	domain.RoleAuthority: {
		{Path: "", Label: "Dashboard Home"},
		{Path: "issues", Label: "Manage Issues"},
		{Path: "analytics", Label: "Analytics"},
		{Path: "citizens", Label: "Citizen Feedback"},
		{Path: "settings", Label: "Settings"},
	},
	domain.RolePartner: {
		{Path: "", Label: "Dashboard Home"},
		{Path: "tasks", Label: "Assigned Tasks"},
		{Path: "performance", Label: "Performance"},
		{Path: "communication", Label: "Communication"},
		{Path: "settings", Label: "Settings"},
	},
}

// DashboardService serves the read-only parts of the dashboard shells.
type DashboardService struct {
	catalog ports.Catalog
	log     zerolog.Logger
}

func NewDashboardService(catalog ports.Catalog, log zerolog.Logger) *DashboardService {
	return &DashboardService{catalog: catalog, log: log}
}

// Sidebar returns the navigation of the role's shell with absolute paths.
func (s *DashboardService) Sidebar(role domain.Role) []domain.SidebarItem {
	items := sidebars[role]
	out := make([]domain.SidebarItem, 0, len(items))
	for _, it := range items {
		path := role.DashboardPath()
		if it.Path != "" {
			path += "/" + it.Path
		}
		out = append(out, domain.SidebarItem{Path: path, Label: it.Label})
	}
	return out
}

func (s *DashboardService) Home(role domain.Role) domain.HomeSummary {
	return s.catalog.Home(role)
}

func (s *DashboardService) Analytics() []domain.Metric   { return s.catalog.Analytics() }
func (s *DashboardService) Performance() []domain.Metric { return s.catalog.Performance() }
func (s *DashboardService) Feedback() []domain.Feedback  { return s.catalog.Feedback() }
func (s *DashboardService) BlogPosts() []domain.BlogPost { return s.catalog.BlogPosts() }

// Contact acknowledges a contact form submission.
func (s *DashboardService) Contact(ctx context.Context, name, email, _ string) domain.Ack {
	s.log.Info().Ctx(ctx).Str("name", name).Str("email", email).Msg("contact message received")
	return domain.Ack{Message: contactAck}
}

// Subscribe acknowledges a newsletter sign-up.
func (s *DashboardService) Subscribe(ctx context.Context, email string) domain.Ack {
	s.log.Info().Ctx(ctx).Str("email", email).Msg("newsletter subscription received")
	return domain.Ack{Message: newsletterAck}
}
