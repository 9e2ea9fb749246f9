package classroom_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"daycare-service/internal/child"
	"daycare-service/internal/classroom"
	"daycare-service/internal/daycare"
	"daycare-service/internal/logger"
	"daycare-service/internal/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listResponse struct {
	ClassroomsCount int                   `json:"classrooms_count"`
	Data            []classroom.Classroom `json:"data"`
}

type getResponse struct {
	Data []classroom.Classroom `json:"data"`
}

type updateResponse struct {
	Status      string              `json:"status"`
	Message     string              `json:"message"`
	UpdatedData classroom.Classroom `json:"updated_data"`
}

func TestClassroomHandler(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t)

	repo := classroom.NewRepository(pgContainer.DB)
	handler := classroom.NewHandler(classroom.NewService(repo), logger.New())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router)

	ctx := context.Background()
	daycareRepo := daycare.NewRepository(pgContainer.DB)

	newDaycare := func(t *testing.T) *daycare.Daycare {
		t.Helper()
		d := &daycare.Daycare{Name: "Host Daycare", Address: "1 Elm St", Phone: "555-1001", Email: "host@example.com"}
		require.NoError(t, daycareRepo.Insert(ctx, d))
		return d
	}

	t.Run("ListClassrooms", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		host := newDaycare(t)

		for _, name := range []string{"Sunflowers", "Ladybugs"} {
			require.NoError(t, repo.Insert(ctx, &classroom.Classroom{Name: name, DaycareID: host.ID}))
		}

		req := httptest.NewRequest(http.MethodGet, "/get_classrooms", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response listResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 2, response.ClassroomsCount)
		assert.Len(t, response.Data, response.ClassroomsCount)
		assert.Equal(t, "Sunflowers", response.Data[0].Name)
	})

	t.Run("GetClassroom", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		host := newDaycare(t)

		room := &classroom.Classroom{Name: "Acorns", DaycareID: host.ID}
		require.NoError(t, repo.Insert(ctx, room))

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/get_classroom/%d", room.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response getResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, room.ID, response.Data[0].ID)
		assert.Equal(t, host.ID, response.Data[0].DaycareID)
	})

	t.Run("GetClassroomNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		req := httptest.NewRequest(http.MethodGet, "/get_classroom/99999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpdateClassroom", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		host := newDaycare(t)

		room := &classroom.Classroom{Name: "Old Room", DaycareID: host.ID}
		require.NoError(t, repo.Insert(ctx, room))

		payload := map[string]interface{}{"name": "New Room", "daycare_id": host.ID}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/update_classroom/%d", room.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response updateResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "success", response.Status)
		assert.Equal(t, "New Room", response.UpdatedData.Name)

		persisted, err := repo.GetByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Room", persisted.Name)
	})

	t.Run("UpdateClassroomZeroDaycareID", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		host := newDaycare(t)

		room := &classroom.Classroom{Name: "Keep Room", DaycareID: host.ID}
		require.NoError(t, repo.Insert(ctx, room))

		// zero counts as missing
		payload := map[string]interface{}{"name": "New Room", "daycare_id": 0}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/update_classroom/%d", room.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errBody map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errBody))
		assert.Contains(t, errBody["message"], "daycare_id")

		persisted, err := repo.GetByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "Keep Room", persisted.Name)
	})

	t.Run("UpdateClassroomNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		host := newDaycare(t)

		payload := map[string]interface{}{"name": "Ghost Room", "daycare_id": host.ID}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPut, "/update_classroom/99999", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteClassroom", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		host := newDaycare(t)

		room := &classroom.Classroom{Name: "To Delete", DaycareID: host.ID}
		require.NoError(t, repo.Insert(ctx, room))

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/delete_classroom/%d", room.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteClassroomNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		req := httptest.NewRequest(http.MethodDelete, "/delete_classroom/99999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteClassroomDetachesChildren", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		host := newDaycare(t)

		room := &classroom.Classroom{Name: "Detach Me", DaycareID: host.ID}
		require.NoError(t, repo.Insert(ctx, room))

		childRepo := child.NewRepository(pgContainer.DB)
		kid := &child.Child{Name: "Ethan", DateOfBirth: "2020-11-02", ClassroomID: &room.ID, DaycareID: host.ID}
		require.NoError(t, childRepo.Insert(ctx, kid))

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/delete_classroom/%d", room.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		// child survives with classroom_id set to NULL
		detached, err := childRepo.GetByID(ctx, kid.ID)
		require.NoError(t, err)
		assert.Nil(t, detached.ClassroomID)
	})

	t.Run("InvalidClassroomID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/delete_classroom/invalid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
