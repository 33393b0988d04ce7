package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/eventmate/api-go/models"
	"github.com/eventmate/api-go/repositories"
	"github.com/eventmate/api-go/utils"
	"github.com/gin-gonic/gin"
)

// FollowerController maps the follow-graph HTTP surface onto the
// repositories. The caller identity always comes from the auth middleware,
// never from the request body.
type FollowerController struct {
	followerRepository   repositories.FollowerRepository
	suggestionRepository repositories.SuggestionRepository
	userRepository       repositories.UserRepository
}

func NewFollowerController(
	followerRepo repositories.FollowerRepository,
	suggestionRepo repositories.SuggestionRepository,
	userRepo repositories.UserRepository,
) *FollowerController {
	return &FollowerController{
		followerRepository:   followerRepo,
		suggestionRepository: suggestionRepo,
		userRepository:       userRepo,
	}
}

type CreateFollowerRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

type FollowerResponse struct {
	ID         string      `json:"id"`
	Subject    UserSummary `json:"subject"`
	Object     UserSummary `json:"object"`
	IsFollow   bool        `json:"is_follow"`
	IsFollowed bool        `json:"is_followed"`
	CreatedAt  time.Time   `json:"created_at"`
}

type FollowedUserEntry struct {
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserSummary(u models.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}

func toFollowerResponse(rel *models.Follower) FollowerResponse {
	return FollowerResponse{
		ID:         rel.ID,
		Subject:    toUserSummary(rel.Subject),
		Object:     toUserSummary(rel.Object),
		IsFollow:   rel.IsFollow,
		IsFollowed: rel.IsFollowed,
		CreatedAt:  rel.CreatedAt,
	}
}

// Create starts following another user.
func (fc *FollowerController) Create(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req CreateFollowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	target, err := fc.userRepository.GetUserByID(req.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to look up user")
		return
	}
	if target == nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	rel, err := fc.followerRepository.Create(currentUser.UserID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSelfFollow):
			respondError(c, http.StatusBadRequest, "Cannot follow yourself")
		case errors.Is(err, repositories.ErrAlreadyFollowing):
			respondError(c, http.StatusBadRequest, "Already following this user")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create follow relationship")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, toFollowerResponse(rel), "Follow relationship created")
}

// FollowStatus reports whether the caller follows the given user.
func (fc *FollowerController) FollowStatus(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	isFollow, isCreated, err := fc.followerRepository.FollowStatus(currentUser.UserID, c.Param("userId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to check follow status")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"is_follow":  isFollow,
		"is_created": isCreated,
	}, "")
}

// FollowCount returns the caller's following/followers counts.
func (fc *FollowerController) FollowCount(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	fc.respondCounts(c, currentUser.UserID)
}

// UserFollowStats returns another user's following/followers counts.
func (fc *FollowerController) UserFollowStats(c *gin.Context) {
	fc.respondCounts(c, c.Param("userId"))
}

func (fc *FollowerController) respondCounts(c *gin.Context, userID string) {
	followingCount, followersCount, err := fc.followerRepository.Counts(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to count follow relationships")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"following_count": followingCount,
		"followers_count": followersCount,
	}, "")
}

// FollowingList returns the users the caller follows.
func (fc *FollowerController) FollowingList(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	fc.respondFollowing(c, currentUser.UserID)
}

// UserFollowing returns the users a given user follows.
func (fc *FollowerController) UserFollowing(c *gin.Context) {
	fc.respondFollowing(c, c.Param("userId"))
}

func (fc *FollowerController) respondFollowing(c *gin.Context, userID string) {
	page, limit := utils.GetPagination(c)

	rels, total, err := fc.followerRepository.FollowingList(userID, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load following list")
		return
	}

	items := make([]FollowedUserEntry, 0, len(rels))
	for _, rel := range rels {
		items = append(items, FollowedUserEntry{
			User:      toUserSummary(rel.Object),
			CreatedAt: rel.CreatedAt,
		})
	}

	respondSuccess(c, http.StatusOK, PagedResult{Items: items, Total: total, Page: page, Limit: limit}, "")
}

// FollowersList returns the users following the caller.
func (fc *FollowerController) FollowersList(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	fc.respondFollowers(c, currentUser.UserID)
}

// UserFollowers returns the users following a given user.
func (fc *FollowerController) UserFollowers(c *gin.Context) {
	fc.respondFollowers(c, c.Param("userId"))
}

func (fc *FollowerController) respondFollowers(c *gin.Context, userID string) {
	page, limit := utils.GetPagination(c)

	rels, total, err := fc.followerRepository.FollowersList(userID, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load followers list")
		return
	}

	items := make([]FollowedUserEntry, 0, len(rels))
	for _, rel := range rels {
		items = append(items, FollowedUserEntry{
			User:      toUserSummary(rel.Subject),
			CreatedAt: rel.CreatedAt,
		})
	}

	respondSuccess(c, http.StatusOK, PagedResult{Items: items, Total: total, Page: page, Limit: limit}, "")
}

// Toggle flips the caller's side of the relationship with the given user.
// Toggling off the last active direction dissolves the relationship.
func (fc *FollowerController) Toggle(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	rel, removed, err := fc.followerRepository.Toggle(currentUser.UserID, c.Param("userId"))
	if err != nil {
		if errors.Is(err, repositories.ErrRelationshipNotFound) {
			respondError(c, http.StatusNotFound, "Follow relationship not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update follow relationship")
		return
	}

	if removed {
		respondSuccess(c, http.StatusOK, nil, "Unfollowed user")
		return
	}

	respondSuccess(c, http.StatusOK, toFollowerResponse(rel), "Follow status updated")
}

// Remove deletes a relationship row by its ID.
func (fc *FollowerController) Remove(c *gin.Context) {
	if err := fc.followerRepository.Remove(c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrRelationshipNotFound) {
			respondError(c, http.StatusNotFound, "Follow relationship not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete follow relationship")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"deleted": true}, "Follow relationship deleted")
}

// CheckIsSelf tells the client whether the target user is the caller.
func (fc *FollowerController) CheckIsSelf(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	isSelf := currentUser.UserID == c.Param("userId")
	respondSuccess(c, http.StatusOK, gin.H{"is_self": isSelf}, "")
}

// Suggestions returns users the caller may want to follow.
func (fc *FollowerController) Suggestions(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	page, limit := utils.GetPagination(c)

	suggestions, err := fc.suggestionRepository.SuggestedFollows(currentUser.UserID, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load follow suggestions")
		return
	}

	respondSuccess(c, http.StatusOK, suggestions, "")
}

// Search finds users by display name, excluding the caller.
func (fc *FollowerController) Search(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		respondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	page, limit := utils.GetPagination(c)

	users, total, err := fc.userRepository.SearchUsers(currentUser.UserID, c.Query("term"), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search users")
		return
	}

	items := make([]FollowedUserEntry, 0, len(users))
	for _, u := range users {
		items = append(items, FollowedUserEntry{
			User:      toUserSummary(u),
			CreatedAt: u.CreatedAt,
		})
	}

	respondSuccess(c, http.StatusOK, PagedResult{Items: items, Total: total, Page: page, Limit: limit}, "")
}
