package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propdesk/property-management-api/internal/database"
	"github.com/propdesk/property-management-api/internal/models"
	"github.com/propdesk/property-management-api/internal/reports"
	"github.com/propdesk/property-management-api/internal/repository"
	"github.com/propdesk/property-management-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Task{})
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	taskRepo := repository.NewTaskRepository(suite.db)
	// No hub: mutations are not streamed anywhere in tests.
	taskService := services.NewTaskService(taskRepo, nil)
	suite.handler = NewTaskHandler(taskService, nil)

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.GET("/api/tasks/board", suite.handler.GetBoard)
	suite.router.POST("/api/tasks", suite.handler.CreateTask)
	suite.router.PATCH("/api/tasks/:id", suite.handler.UpdateTask)
	suite.router.POST("/api/tasks/:id/archive", suite.handler.ArchiveTask)
	suite.router.DELETE("/api/tasks/:id", suite.handler.DeleteTask)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, status models.TaskStatus) *models.Task {
	task := &models.Task{
		Title:    title,
		Status:   status,
		Priority: models.TaskPriorityLow,
	}
	suite.db.Create(task)
	return task
}

func (suite *TaskHandlerTestSuite) request(method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Defaults() {
	w := suite.request(http.MethodPost, "/api/tasks", map[string]string{
		"title": "Inspect roof",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var task models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	suite.Equal("Inspect roof", task.Title)
	suite.Equal(models.TaskStatusWaiting, task.Status)
	suite.Equal(models.TaskPriorityLow, task.Priority)
	suite.False(task.IsArchived)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingTitle() {
	w := suite.request(http.MethodPost, "/api/tasks", map[string]string{
		"description": "no title",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_StatusIsFreeLabel() {
	task := suite.createTestTask("Inspect roof", models.TaskStatusCompleted)

	// Any status from the fixed set can be set at any time, no ordering.
	w := suite.request(http.MethodPatch, "/api/tasks/"+task.ID, map[string]string{
		"status": string(models.TaskStatusWaiting),
	})

	suite.Equal(http.StatusOK, w.Code)

	var updated models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal(models.TaskStatusWaiting, updated.Status)
	suite.Equal("Inspect roof", updated.Title)
}

func (suite *TaskHandlerTestSuite) TestGetBoard() {
	suite.createTestTask("Inspect roof", models.TaskStatusWaiting)
	suite.createTestTask("Renew insurance", models.TaskStatusCompleted)

	archived := suite.createTestTask("Old chore", models.TaskStatusWaiting)
	archived.IsArchived = true
	suite.db.Save(archived)

	w := suite.request(http.MethodGet, "/api/tasks/board", nil)
	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Columns []reports.TaskColumn `json:"columns"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Columns, 4)

	waiting := response.Columns[0]
	suite.Equal(models.TaskStatusWaiting, waiting.Status)
	suite.Require().Len(waiting.Months, 1)
	suite.Len(waiting.Months[0].Tasks, 1)

	// The archived view shows the other side of the toggle.
	w = suite.request(http.MethodGet, "/api/tasks/board?archived=true", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Columns, 4)
	suite.Require().Len(response.Columns[0].Months, 1)
	suite.Equal("Old chore", response.Columns[0].Months[0].Tasks[0].Title)
}

func (suite *TaskHandlerTestSuite) TestArchiveTask() {
	task := suite.createTestTask("Inspect roof", models.TaskStatusWaiting)

	w := suite.request(http.MethodPost, "/api/tasks/"+task.ID+"/archive", map[string]bool{
		"archived": true,
	})

	suite.Equal(http.StatusOK, w.Code)

	var updated models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.True(updated.IsArchived)

	// The record still exists; archiving never deletes.
	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	task := suite.createTestTask("Inspect roof", models.TaskStatusWaiting)

	w := suite.request(http.MethodDelete, "/api/tasks/"+task.ID, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, "/api/tasks/"+task.ID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
