// file: internals/features/portfolio/research/dto/research_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "teachereval_backend/internals/features/portfolio/research/model"
)

type CreateResearchRequest struct {
	TeacherID uuid.UUID `json:"research_teacher_id" form:"research_teacher_id" validate:"required"`
	Kind      string    `json:"research_kind"       form:"research_kind"       validate:"required,oneof=publication grant patent"`
	Title     string    `json:"research_title"      form:"research_title"      validate:"required,min=1,max=300"`
	Date      time.Time `json:"research_date"       form:"research_date"       validate:"required"`
	Status    string    `json:"research_status"     form:"research_status"     validate:"required,min=1,max=40"`

	Venue         *string  `json:"research_venue"          form:"research_venue"          validate:"omitempty,max=200"`
	ImpactFactor  *float64 `json:"research_impact_factor"  form:"research_impact_factor"  validate:"omitempty,gte=0"`
	CitationCount int      `json:"research_citation_count" form:"research_citation_count" validate:"min=0"`
	Authors       []string `json:"research_authors"        form:"research_authors"`

	FundingAmount float64 `json:"research_funding_amount" form:"research_funding_amount" validate:"gte=0"`
	FundingAgency *string `json:"research_funding_agency" form:"research_funding_agency" validate:"omitempty,max=200"`
}

func (r *CreateResearchRequest) Normalize() {
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.Title = strings.TrimSpace(r.Title)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r *CreateResearchRequest) ToModel() m.ResearchModel {
	return m.ResearchModel{
		ResearchTeacherID:     r.TeacherID,
		ResearchKind:          m.ResearchKind(r.Kind),
		ResearchTitle:         r.Title,
		ResearchDate:          r.Date,
		ResearchStatus:        r.Status,
		ResearchVenue:         r.Venue,
		ResearchImpactFactor:  r.ImpactFactor,
		ResearchCitationCount: r.CitationCount,
		ResearchAuthors:       pq.StringArray(r.Authors),
		ResearchFundingAmount: r.FundingAmount,
		ResearchFundingAgency: r.FundingAgency,
	}
}

type UpdateResearchRequest struct {
	Title         *string    `json:"research_title"          form:"research_title"          validate:"omitempty,min=1,max=300"`
	Date          *time.Time `json:"research_date"           form:"research_date"`
	Status        *string    `json:"research_status"         form:"research_status"         validate:"omitempty,min=1,max=40"`
	Venue         *string    `json:"research_venue"          form:"research_venue"          validate:"omitempty,max=200"`
	ImpactFactor  *float64   `json:"research_impact_factor"  form:"research_impact_factor"  validate:"omitempty,gte=0"`
	CitationCount *int       `json:"research_citation_count" form:"research_citation_count" validate:"omitempty,min=0"`
	Authors       []string   `json:"research_authors"        form:"research_authors"`
	FundingAmount *float64   `json:"research_funding_amount" form:"research_funding_amount" validate:"omitempty,gte=0"`
	FundingAgency *string    `json:"research_funding_agency" form:"research_funding_agency" validate:"omitempty,max=200"`
}

func (r *UpdateResearchRequest) Apply(out *m.ResearchModel) {
	if r.Title != nil {
		out.ResearchTitle = strings.TrimSpace(*r.Title)
	}
	if r.Date != nil {
		out.ResearchDate = *r.Date
	}
	if r.Status != nil {
		out.ResearchStatus = strings.ToLower(strings.TrimSpace(*r.Status))
	}
	if r.Venue != nil {
		out.ResearchVenue = r.Venue
	}
	if r.ImpactFactor != nil {
		out.ResearchImpactFactor = r.ImpactFactor
	}
	if r.CitationCount != nil {
		out.ResearchCitationCount = *r.CitationCount
	}
	if r.Authors != nil {
		out.ResearchAuthors = pq.StringArray(r.Authors)
	}
	if r.FundingAmount != nil {
		out.ResearchFundingAmount = *r.FundingAmount
	}
	if r.FundingAgency != nil {
		out.ResearchFundingAgency = r.FundingAgency
	}
}

type ResearchResponse struct {
	ResearchID    uuid.UUID `json:"research_id"`
	TeacherID     uuid.UUID `json:"research_teacher_id"`
	Kind          string    `json:"research_kind"`
	Title         string    `json:"research_title"`
	Date          time.Time `json:"research_date"`
	Status        string    `json:"research_status"`
	Venue         *string   `json:"research_venue,omitempty"`
	ImpactFactor  *float64  `json:"research_impact_factor,omitempty"`
	CitationCount int       `json:"research_citation_count"`
	Authors       []string  `json:"research_authors,omitempty"`
	FundingAmount float64   `json:"research_funding_amount"`
	FundingAgency *string   `json:"research_funding_agency,omitempty"`
	CreatedAt     time.Time `json:"research_created_at"`
	UpdatedAt     time.Time `json:"research_updated_at"`
}

func FromResearchModel(r m.ResearchModel) ResearchResponse {
	return ResearchResponse{
		ResearchID:    r.ResearchID,
		TeacherID:     r.ResearchTeacherID,
		Kind:          string(r.ResearchKind),
		Title:         r.ResearchTitle,
		Date:          r.ResearchDate,
		Status:        r.ResearchStatus,
		Venue:         r.ResearchVenue,
		ImpactFactor:  r.ResearchImpactFactor,
		CitationCount: r.ResearchCitationCount,
		Authors:       []string(r.ResearchAuthors),
		FundingAmount: r.ResearchFundingAmount,
		FundingAgency: r.ResearchFundingAgency,
		CreatedAt:     r.ResearchCreatedAt,
		UpdatedAt:     r.ResearchUpdatedAt,
	}
}

func FromResearchModels(rs []m.ResearchModel) []ResearchResponse {
	out := make([]ResearchResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromResearchModel(r))
	}
	return out
}
