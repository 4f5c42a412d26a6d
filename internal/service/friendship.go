package service

import (
	"errors"
	"strings"
	"time"

	"batalla/backend/internal/models"

	"gorm.io/gorm"
)

// Relationship labels exposed by SearchUsers, seen from the caller's side.
const (
	RelationNone            = "none"
	RelationFriends         = "friends"
	RelationPendingSent     = "pending_sent"
	RelationPendingReceived = "pending_received"
)

const searchLimit = 10

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FriendView is a friend-list entry: the other party's identity flattened
// together with the edge id, so the client can remove the friendship directly.
type FriendView struct {
	UserID       uint
	Username     string
	Email        string
	Avatar       *string
	FriendshipID uint
}

// SearchResult is a search hit annotated with the caller's relationship to it.
type SearchResult struct {
	UserID           uint
	Username         string
	Avatar           *string
	FriendshipStatus string
}

// FriendshipService drives the friendship state machine. An edge is NONE (no
// row), PENDING or ACCEPTED; rejection and removal take it back to NONE by
// deleting the row.
type FriendshipService struct {
	users *UserService
	db    *gorm.DB
	now   func() time.Time
}

// NewFriendshipService creates a FriendshipService using users to resolve identities.
func NewFriendshipService(db *gorm.DB, users *UserService) *FriendshipService {
	return &FriendshipService{users: users, db: db, now: time.Now}
}

// findEdge looks up the edge between two users in both orderings.
func (s *FriendshipService) findEdge(a, b uint) (*models.Friendship, error) {
	var edge models.Friendship
	err := s.db.Where(
		"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		a, b, b, a,
	).First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &edge, nil
}

// SendRequest creates a pending edge from the requester to the user named by
// addresseeUsername. Guards: the addressee must exist, must not be the
// requester, and no edge may already exist in either direction.
func (s *FriendshipService) SendRequest(requesterID uint, addresseeUsername string) (*models.Friendship, error) {
	addressee, err := s.users.FindByUsername(addresseeUsername)
	if err != nil {
		return nil, err
	}
	if addressee.ID == requesterID {
		return nil, ErrSelfRequest
	}

	existing, err := s.findEdge(requesterID, addressee.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == models.StatusAccepted {
			return nil, ErrAlreadyFriends
		}
		return nil, ErrAlreadyPending
	}

	edge := models.Friendship{
		RequesterID: requesterID,
		AddresseeID: addressee.ID,
		Status:      models.StatusPending,
	}
	if err := s.db.Create(&edge).Error; err != nil {
		return nil, err
	}
	edge.Addressee = *addressee
	return &edge, nil
}

// ListIncoming returns all pending requests addressed to the user, each with
// the requester preloaded.
func (s *FriendshipService) ListIncoming(userID uint) ([]models.Friendship, error) {
	var edges []models.Friendship
	err := s.db.Where("addressee_id = ? AND status = ?", userID, models.StatusPending).
		Preload("Requester").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}

// Accept moves a pending edge to accepted. Only the addressee may accept, and
// only while the edge is still pending.
func (s *FriendshipService) Accept(friendshipID, userID uint) (*models.Friendship, error) {
	var edge models.Friendship
	if err := s.db.First(&edge, friendshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendshipNotFound
		}
		return nil, err
	}
	if edge.AddresseeID != userID {
		return nil, ErrForbidden
	}
	if edge.Status != models.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	edge.Status = models.StatusAccepted
	edge.UpdatedAt = s.now()
	if err := s.db.Model(&edge).Updates(map[string]interface{}{
		"status":     edge.Status,
		"updated_at": edge.UpdatedAt,
	}).Error; err != nil {
		return nil, err
	}
	return &edge, nil
}

// Reject deletes a pending edge. Same guards as Accept, but the row is
// removed entirely so the pair can start over later.
func (s *FriendshipService) Reject(friendshipID, userID uint) error {
	var edge models.Friendship
	if err := s.db.First(&edge, friendshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFriendshipNotFound
		}
		return err
	}
	if edge.AddresseeID != userID {
		return ErrForbidden
	}
	if edge.Status != models.StatusPending {
		return ErrAlreadyProcessed
	}
	return s.db.Delete(&edge).Error
}

// ListFriends returns every accepted edge touching the user, flattened to the
// other party's identity.
func (s *FriendshipService) ListFriends(userID uint) ([]FriendView, error) {
	var edges []models.Friendship
	err := s.db.Where(
		"(requester_id = ? OR addressee_id = ?) AND status = ?",
		userID, userID, models.StatusAccepted,
	).Preload("Requester").Preload("Addressee").Find(&edges).Error
	if err != nil {
		return nil, err
	}

	views := make([]FriendView, 0, len(edges))
	for _, edge := range edges {
		other := edge.Addressee
		if edge.AddresseeID == userID {
			other = edge.Requester
		}
		views = append(views, FriendView{
			UserID:       other.ID,
			Username:     other.Username,
			Email:        other.Email,
			Avatar:       other.Avatar,
			FriendshipID: edge.ID,
		})
	}
	return views, nil
}

// Remove deletes an edge the user is party to, whatever its status. Either
// side may remove: the requester cancelling a pending request, or either
// friend ending an accepted one.
func (s *FriendshipService) Remove(friendshipID, userID uint) error {
	var edge models.Friendship
	if err := s.db.First(&edge, friendshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFriendshipNotFound
		}
		return err
	}
	if edge.RequesterID != userID && edge.AddresseeID != userID {
		return ErrForbidden
	}
	return s.db.Delete(&edge).Error
}

// AreFriends reports whether an accepted edge exists between the two users.
func (s *FriendshipService) AreFriends(a, b uint) (bool, error) {
	edge, err := s.findEdge(a, b)
	if err != nil {
		return false, err
	}
	return edge != nil && edge.Status == models.StatusAccepted, nil
}

// SearchUsers matches usernames case-insensitively on a substring, excluding
// the caller, capped at ten hits in store order. Each hit carries the
// caller's relationship to it.
func (s *FriendshipService) SearchUsers(query string, callerID uint) ([]SearchResult, error) {
	// % and _ in the query are literal characters, not LIKE wildcards.
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	var users []models.User
	err := s.db.Where(`LOWER(username) LIKE ? ESCAPE '\' AND id <> ?`, pattern, callerID).
		Limit(searchLimit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(users))
	for _, user := range users {
		status, err := s.relationTo(callerID, user.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{
			UserID:           user.ID,
			Username:         user.Username,
			Avatar:           user.Avatar,
			FriendshipStatus: status,
		})
	}
	return results, nil
}

// relationTo maps the edge between caller and other to a search status label.
func (s *FriendshipService) relationTo(callerID, otherID uint) (string, error) {
	edge, err := s.findEdge(callerID, otherID)
	if err != nil {
		return "", err
	}
	switch {
	case edge == nil:
		return RelationNone, nil
	case edge.Status == models.StatusAccepted:
		return RelationFriends, nil
	case edge.RequesterID == callerID:
		return RelationPendingSent, nil
	default:
		return RelationPendingReceived, nil
	}
}
