package helpdesk

import "time"

// UserRole mirrors the backend's role enumeration.
type UserRole int

const (
	RoleCustomer UserRole = 1
	RoleAgent    UserRole = 2
	RoleAdmin    UserRole = 3
)

func (r UserRole) String() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleAgent:
		return "Agent"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// TicketStatus is the lifecycle state of a ticket.
type TicketStatus int

const (
	StatusNew        TicketStatus = 1
	StatusInProgress TicketStatus = 2
	StatusResolved   TicketStatus = 3
	StatusClosed     TicketStatus = 4
)

func (s TicketStatus) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In Progress"
	case StatusResolved:
		return "Resolved"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Priority ranks ticket urgency.
type Priority int

const (
	PriorityLow      Priority = 1
	PriorityMedium   Priority = 2
	PriorityHigh     Priority = 3
	PriorityCritical Priority = 4
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// BlockingLevel and AffectedUsers grade the business impact of an issue.
type BlockingLevel int

const (
	BlockingNone       BlockingLevel = 1
	BlockingPartially  BlockingLevel = 2
	BlockingCompletely BlockingLevel = 3
	BlockingSystemDown BlockingLevel = 4
)

type AffectedUsers int

const (
	AffectedJustMe       AffectedUsers = 1
	AffectedMyTeam       AffectedUsers = 2
	AffectedDepartment   AffectedUsers = 3
	AffectedWholeCompany AffectedUsers = 4
)

// User is the identity record returned by the backend.
type User struct {
	ID          int        `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	FullName    string     `json:"fullName"`
	Role        UserRole   `json:"role"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	Company     string     `json:"company,omitempty"`
	Skills      []string   `json:"skills,omitempty"`
}

// Category is a node in the category hierarchy.
type Category struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	ParentCategoryID *int       `json:"parentCategoryId,omitempty"`
	Level            int        `json:"level"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	ParentCategory   *Category  `json:"parentCategory,omitempty"`
	SubCategories    []Category `json:"subCategories,omitempty"`
}

// Attachment describes an uploaded file.
type Attachment struct {
	ID               int       `json:"id"`
	FileName         string    `json:"fileName"`
	OriginalFileName string    `json:"originalFileName"`
	FileSize         int64     `json:"fileSize"`
	MimeType         string    `json:"mimeType"`
	CreatedAt        time.Time `json:"createdAt"`
	UploadedBy       User      `json:"uploadedBy"`
}

// Comment is a ticket comment; internal comments are agent-only.
type Comment struct {
	ID          int       `json:"id"`
	CommentText string    `json:"commentText"`
	IsInternal  bool      `json:"isInternal"`
	CreatedAt   time.Time `json:"createdAt"`
	User        User      `json:"user"`
}

// BusinessImpact is the customer's assessment of how badly an issue hurts.
type BusinessImpact struct {
	BlockingLevel     BlockingLevel `json:"blockingLevel"`
	AffectedUsers     AffectedUsers `json:"affectedUsers"`
	UrgentDeadline    *time.Time    `json:"urgentDeadline,omitempty"`
	AdditionalContext string        `json:"additionalContext,omitempty"`
}

// AIAnalysis is the machine triage attached to a ticket.
type AIAnalysis struct {
	Category           string   `json:"category"`
	CategoryConfidence float64  `json:"categoryConfidence"`
	Priority           Priority `json:"priority"`
	Sentiment          float64  `json:"sentiment"`
	Keywords           []string `json:"keywords"`
	SuggestedResponse  string   `json:"suggestedResponse,omitempty"`
}

// Feedback is the customer's post-resolution rating.
type Feedback struct {
	ID         int       `json:"id"`
	TicketID   int       `json:"ticketId"`
	CustomerID int       `json:"customerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Ticket is the full ticket record with its relations.
type Ticket struct {
	ID             int             `json:"id"`
	TicketNumber   string          `json:"ticketNumber"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         TicketStatus    `json:"status"`
	Priority       Priority        `json:"priority"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	ResolvedAt     *time.Time      `json:"resolvedAt,omitempty"`
	Customer       User            `json:"customer"`
	AssignedAgent  *User           `json:"assignedAgent,omitempty"`
	Category       *Category       `json:"category,omitempty"`
	Comments       []Comment       `json:"comments,omitempty"`
	Attachments    []Attachment    `json:"attachments,omitempty"`
	BusinessImpact *BusinessImpact `json:"businessImpact,omitempty"`
	AIAnalysis     *AIAnalysis     `json:"aiAnalysis,omitempty"`
	Feedback       *Feedback       `json:"feedback,omitempty"`
}

// CreateTicket is the payload for opening a new ticket.
type CreateTicket struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	CustomerID     int            `json:"customerId"`
	BusinessImpact BusinessImpact `json:"businessImpact"`
	CategoryID     *int           `json:"categoryId,omitempty"`
	DueDate        *time.Time     `json:"dueDate,omitempty"`
}

// AddComment is the payload for commenting on a ticket.
type AddComment struct {
	CommentText string `json:"commentText"`
	IsInternal  bool   `json:"isInternal,omitempty"`
}

// TicketFilters narrows a ticket listing. Nil fields are not sent at all.
type TicketFilters struct {
	Status           *TicketStatus
	CustomerID       *int
	AgentID          *int
	Search           string
	IncludeEscalated *bool
}
