package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lockin90/lockin-backend/internal/database"
	"github.com/lockin90/lockin-backend/internal/middleware"
	"github.com/lockin90/lockin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateProjectRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	TechStack    []string `json:"tech_stack"`
	DeployedLink string   `json:"deployed_link" validate:"omitempty,url"`
	GithubLink   string   `json:"github_link" validate:"omitempty,url"`
	Month        int      `json:"month" validate:"required,min=1,max=3"`
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	TechStack    *[]string `json:"tech_stack"`
	DeployedLink *string   `json:"deployed_link" validate:"omitempty,url"`
	GithubLink   *string   `json:"github_link" validate:"omitempty,url"`
	Status       *string   `json:"status"`
}

// CreateProject creates a month project owned by the caller.
func CreateProject(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var req CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.TechStack == nil {
		req.TechStack = []string{}
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		UpdatedAt:    now,
		UserID:       user.ID,
		Title:        req.Title,
		Description:  req.Description,
		TechStack:    req.TechStack,
		DeployedLink: req.DeployedLink,
		GithubLink:   req.GithubLink,
		Status:       models.StatusPlanning,
		Month:        req.Month,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("projects").InsertOne(ctx, project); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to create project")
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// GetMyProjects returns all of the caller's projects.
func GetMyProjects(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	projects, err := findProjectsByOwner(ctx, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load projects")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func findProjectsByOwner(ctx context.Context, userID string) ([]models.Project, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := database.DB.Collection("projects").Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// loadOwnedProject fetches a project by id and enforces ownership. Writes
// the error response on failure and returns nil.
func loadOwnedProject(ctx context.Context, w http.ResponseWriter, projectID, callerID string) *models.Project {
	var project models.Project
	err := database.DB.Collection("projects").FindOne(ctx, bson.M{"id": projectID}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, CodeNotFound, "Project not found")
		return nil
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load project")
		return nil
	}
	if project.UserID != callerID {
		writeError(w, http.StatusForbidden, CodeForbidden, "You do not own this project")
		return nil
	}
	return &project
}

// UpdateProject applies a partial update to a caller-owned project.
func UpdateProject(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	projectID := chi.URLParam(r, "id")

	var req UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.Status != nil && !models.ValidStatus(models.ProjectStatus(*req.Status)) {
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid project status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	project := loadOwnedProject(ctx, w, projectID, user.ID)
	if project == nil {
		return
	}

	update := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.TechStack != nil {
		update["tech_stack"] = *req.TechStack
	}
	if req.DeployedLink != nil {
		update["deployed_link"] = *req.DeployedLink
	}
	if req.GithubLink != nil {
		update["github_link"] = *req.GithubLink
	}
	if req.Status != nil {
		update["status"] = *req.Status
	}

	if _, err := database.DB.Collection("projects").UpdateOne(ctx, bson.M{"id": projectID}, bson.M{"$set": update}); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to update project")
		return
	}

	var updated models.Project
	if err := database.DB.Collection("projects").FindOne(ctx, bson.M{"id": projectID}).Decode(&updated); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load project")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProject hard-deletes a caller-owned project.
func DeleteProject(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	projectID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if loadOwnedProject(ctx, w, projectID, user.ID) == nil {
		return
	}

	if _, err := database.DB.Collection("projects").DeleteOne(ctx, bson.M{"id": projectID}); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to delete project")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Project deleted successfully",
	})
}

// ExploreProjects is the public showcase feed: every user's projects joined
// with creator name and picture, newest first.
func ExploreProjects(w http.ResponseWriter, r *http.Request) {
	limit := parsePositiveInt(r.URL.Query().Get("limit"), 50)
	if limit > 100 {
		limit = 100
	}
	offset := parseNonNegativeInt(r.URL.Query().Get("offset"), 0)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "id",
			"as":           "creator",
		}}},
		{{Key: "$unwind", Value: "$creator"}},
		{{Key: "$project", Value: bson.M{
			"_id":             0,
			"id":              1,
			"title":           1,
			"description":     1,
			"tech_stack":      1,
			"deployed_link":   1,
			"github_link":     1,
			"status":          1,
			"month":           1,
			"created_at":      1,
			"creator_id":      "$creator.id",
			"creator_name":    "$creator.name",
			"creator_picture": "$creator.picture",
		}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$skip", Value: offset}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := database.DB.Collection("projects").Aggregate(ctx, pipeline)
	if err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load explore feed")
		return
	}
	defer cursor.Close(ctx)

	projects := []models.ExploreProject{}
	if err := cursor.All(ctx, &projects); err != nil {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to load explore feed")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func parsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return fallback
}

func parseNonNegativeInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return fallback
}
