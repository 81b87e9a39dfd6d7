package client

import (
	"context"
	"sort"

	reviewRepo "fieldserve/database/repository/review"
	"fieldserve/models"
	"fieldserve/utils"
)

// In-memory fakes emulating the documented repository contracts.

type fakeClientRepo struct {
	clients map[string]*models.Client
}

func newFakeClientRepo(clients ...*models.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: make(map[string]*models.Client)}
	for _, c := range clients {
		cp := *c
		r.clients[c.ID] = &cp
	}
	return r
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.Client) error {
	for _, existing := range r.clients {
		if existing.Email == c.Email {
			return utils.ConflictError{Reason: "account with this email already exists"}
		}
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "client", ID: id}
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByEmail(_ context.Context, email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "client"}
}

func (r *fakeClientRepo) Update(_ context.Context, c *models.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return utils.NotFoundError{Resource: "client", ID: c.ID}
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	released map[string]bool
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		bookings: make(map[string]*models.Booking),
		released: make(map[string]bool),
	}
	for _, b := range bookings {
		cp := *b
		r.bookings[b.ID] = &cp
	}
	return r
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "booking", ID: id}
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetForAgent(_ context.Context, id, agentID string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.AgentID != agentID {
		return nil, utils.NotFoundError{Resource: "booking", ID: id}
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByClient(_ context.Context, clientID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookingRepo) ListByOrganization(_ context.Context, orgID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.OrganizationID == orgID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByAgent(_ context.Context, agentID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.AgentID == agentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateVersioned(_ context.Context, b *models.Booking) error {
	stored, ok := r.bookings[b.ID]
	if !ok || stored.Version != b.Version {
		return utils.ConflictError{Reason: "booking was modified concurrently"}
	}
	b.Version++
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) AssignAgent(_ context.Context, b *models.Booking, agent *models.Agent) error {
	if agent.Status != models.AgentStatusFree {
		return utils.ConflictError{Reason: "agent " + agent.ID + " is not available"}
	}
	stored, ok := r.bookings[b.ID]
	if !ok || stored.Version != b.Version {
		return utils.ConflictError{Reason: "booking was modified concurrently"}
	}
	agent.Status = models.AgentStatusBusy
	agent.CurrentBookingID = b.ID
	b.Version++
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) UpdateVersionedReleasingAgent(ctx context.Context, b *models.Booking, agentID string, completed bool) error {
	if err := r.UpdateVersioned(ctx, b); err != nil {
		return err
	}
	r.released[agentID] = true
	return nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		cp := *s
		r.services[s.ID] = &cp
	}
	return r
}

func (r *fakeServiceRepo) Create(_ context.Context, s *models.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "service", ID: id}
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) ListByOrganization(_ context.Context, orgID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.OrganizationID == orgID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s *models.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) Search(context.Context, models.SearchQuery, []float32) ([]models.SearchResultItem, error) {
	return nil, nil
}

func (r *fakeServiceRepo) DistinctCategories(context.Context) ([]string, error) {
	return nil, nil
}

type fakeOrgRepo struct {
	orgs map[string]*models.Organization
}

func newFakeOrgRepo(orgs ...*models.Organization) *fakeOrgRepo {
	r := &fakeOrgRepo{orgs: make(map[string]*models.Organization)}
	for _, o := range orgs {
		cp := *o
		r.orgs[o.ID] = &cp
	}
	return r
}

func (r *fakeOrgRepo) Create(_ context.Context, o *models.Organization) error {
	cp := *o
	r.orgs[o.ID] = &cp
	return nil
}

func (r *fakeOrgRepo) GetByID(_ context.Context, id string) (*models.Organization, error) {
	o, ok := r.orgs[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "organization", ID: id}
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrgRepo) GetByEmail(_ context.Context, email string) (*models.Organization, error) {
	for _, o := range r.orgs {
		if o.Email == email {
			cp := *o
			return &cp, nil
		}
	}
	return nil, utils.NotFoundError{Resource: "organization"}
}

func (r *fakeOrgRepo) Update(_ context.Context, o *models.Organization) error {
	cp := *o
	r.orgs[o.ID] = &cp
	return nil
}

func (r *fakeOrgRepo) AddAgent(_ context.Context, orgID, agentID string) error {
	o, ok := r.orgs[orgID]
	if !ok {
		return utils.NotFoundError{Resource: "organization", ID: orgID}
	}
	o.AgentIDs = append(o.AgentIDs, agentID)
	return nil
}

func (r *fakeOrgRepo) RemoveAgent(_ context.Context, orgID, agentID string) error {
	o, ok := r.orgs[orgID]
	if !ok {
		return utils.NotFoundError{Resource: "organization", ID: orgID}
	}
	kept := o.AgentIDs[:0]
	for _, id := range o.AgentIDs {
		if id != agentID {
			kept = append(kept, id)
		}
	}
	o.AgentIDs = kept
	return nil
}

func (r *fakeOrgRepo) AddService(_ context.Context, orgID, serviceID string) error {
	o, ok := r.orgs[orgID]
	if !ok {
		return utils.NotFoundError{Resource: "organization", ID: orgID}
	}
	o.ServiceIDs = append(o.ServiceIDs, serviceID)
	return nil
}

// fakeReviewRepo runs transactions against an in-memory review set,
// restoring the previous state when the function aborts.
type fakeReviewRepo struct {
	reviews map[string]*models.Review
	orgs    *fakeOrgRepo
}

func newFakeReviewRepo(orgs *fakeOrgRepo) *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review), orgs: orgs}
}

func (r *fakeReviewRepo) snapshot() map[string]*models.Review {
	snap := make(map[string]*models.Review, len(r.reviews))
	for id, rev := range r.reviews {
		cp := *rev
		snap[id] = &cp
	}
	return snap
}

func (r *fakeReviewRepo) RunInTransaction(_ context.Context, fn func(tx reviewRepo.ReviewTx) error) error {
	snap := r.snapshot()
	if err := fn(&fakeReviewTx{repo: r}); err != nil {
		r.reviews = snap
		return err
	}
	return nil
}

func (r *fakeReviewRepo) ListByOrganizationPaged(_ context.Context, orgID string, page, limit int) (*models.ReviewPage, error) {
	var all []models.Review
	for _, rev := range r.reviews {
		if rev.OrganizationID == orgID {
			all = append(all, *rev)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := len(all)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &models.ReviewPage{
		Reviews:    all[start:end],
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		Total:      int64(total),
	}, nil
}

type fakeReviewTx struct {
	repo *fakeReviewRepo
}

func (t *fakeReviewTx) FindByTriple(clientID, orgID, serviceID string) (*models.Review, error) {
	for _, rev := range t.repo.reviews {
		if rev.ClientID == clientID && rev.OrganizationID == orgID && rev.ServiceID == serviceID {
			cp := *rev
			return &cp, nil
		}
	}
	return nil, nil
}

func (t *fakeReviewTx) GetForClient(reviewID, clientID string) (*models.Review, error) {
	rev, ok := t.repo.reviews[reviewID]
	if !ok || rev.ClientID != clientID {
		return nil, utils.NotFoundError{Resource: "review", ID: reviewID}
	}
	cp := *rev
	return &cp, nil
}

func (t *fakeReviewTx) Insert(review *models.Review) error {
	if existing, _ := t.FindByTriple(review.ClientID, review.OrganizationID, review.ServiceID); existing != nil {
		return utils.ConflictError{Reason: "client has already reviewed this service"}
	}
	cp := *review
	t.repo.reviews[review.ID] = &cp
	return nil
}

func (t *fakeReviewTx) Update(review *models.Review) error {
	if _, ok := t.repo.reviews[review.ID]; !ok {
		return utils.NotFoundError{Resource: "review", ID: review.ID}
	}
	cp := *review
	t.repo.reviews[review.ID] = &cp
	return nil
}

func (t *fakeReviewTx) Delete(reviewID string) error {
	if _, ok := t.repo.reviews[reviewID]; !ok {
		return utils.NotFoundError{Resource: "review", ID: reviewID}
	}
	delete(t.repo.reviews, reviewID)
	return nil
}

func (t *fakeReviewTx) ListByOrganization(orgID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range t.repo.reviews {
		if rev.OrganizationID == orgID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (t *fakeReviewTx) SetOrganizationRating(orgID string, rating float64, count int) error {
	o, ok := t.repo.orgs.orgs[orgID]
	if !ok {
		return utils.NotFoundError{Resource: "organization", ID: orgID}
	}
	o.Rating = rating
	o.ReviewCount = count
	return nil
}

type fakeNotifier struct {
	emails []string
	audits []models.AuditLog
}

func (n *fakeNotifier) Email(to, subject, message string) {
	n.emails = append(n.emails, to+": "+subject)
}

func (n *fakeNotifier) Audit(entry models.AuditLog) {
	n.audits = append(n.audits, entry)
}
