package member

import "errors"

// ErrAgentNeedsIdentity gates the partner application on real-name
// verification.
var ErrAgentNeedsIdentity = errors.New("member: partner application requires verified identity")

// AgentApplication is the partner program submission.
type AgentApplication struct {
	Name    string
	Phone   string
	Region  string
	Message string
}

// ApplyForAgent validates a partner application. Only verified members may
// submit one.
func (m *Member) ApplyForAgent(app AgentApplication) error {
	if !m.IdentityVerified {
		return ErrAgentNeedsIdentity
	}
	if app.Name == "" || app.Phone == "" {
		return errors.New("member: name and phone are required")
	}
	return nil
}

// TeamMember is one downline member in the partner dashboard.
type TeamMember struct {
	ID           string
	Name         string
	Role         string
	Phone        string
	Avatar       string
	JoinDate     string
	Contribution int64
}

// Team returns the member's referral downline.
func Team() []TeamMember {
	return []TeamMember{
		{ID: "1", Name: "用户9527", Role: "合伙人", Phone: "138****1234", Avatar: "https://i.pravatar.cc/150?u=2", JoinDate: "2023-11-12", Contribution: 5800},
		{ID: "2", Name: "用户8081", Role: "黄金会员", Phone: "139****5678", Avatar: "https://i.pravatar.cc/150?u=1", JoinDate: "2023-12-05", Contribution: 3200},
		{ID: "3", Name: "用户3306", Role: "普通会员", Phone: "150****9999", Avatar: "https://i.pravatar.cc/150?u=3", JoinDate: "2024-01-20", Contribution: 1500},
		{ID: "4", Name: "用户1024", Role: "普通会员", Phone: "186****0000", Avatar: "https://i.pravatar.cc/150?u=4", JoinDate: "2024-02-14", Contribution: 850},
		{ID: "5", Name: "用户6699", Role: "普通会员", Phone: "135****8888", Avatar: "https://i.pravatar.cc/150?u=5", JoinDate: "2024-03-01", Contribution: 420},
		{ID: "6", Name: "用户7788", Role: "普通会员", Phone: "133****7777", Avatar: "https://i.pravatar.cc/150?u=6", JoinDate: "2024-03-05", Contribution: 120},
		{ID: "7", Name: "用户2048", Role: "黄金会员", Phone: "159****2048", Avatar: "https://i.pravatar.cc/150?u=7", JoinDate: "2024-03-10", Contribution: 2100},
	}
}

// TeamContribution sums the downline's total contribution.
func TeamContribution() int64 {
	var sum int64
	for _, m := range Team() {
		sum += m.Contribution
	}
	return sum
}
