package daycare_test

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
	DaycaresCount int               `json:"daycares_count"`
	Data          []daycare.Daycare `json:"data"`
}

type getResponse struct {
	Data []daycare.Daycare `json:"data"`
}

type updateResponse struct {
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	UpdatedData daycare.Daycare `json:"updated_data"`
}

func TestDaycareHandler(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t)

	repo := daycare.NewRepository(pgContainer.DB)
	handler := daycare.NewHandler(daycare.NewService(repo), logger.New())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router)

	ctx := context.Background()

	t.Run("ListDaycares", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		daycares := []*daycare.Daycare{
			{Name: "Bright Start", Address: "1 Elm St", Phone: "555-1001", Email: "one@example.com"},
			{Name: "Tiny Trees", Address: "2 Oak St", Phone: "555-1002", Email: "two@example.com"},
			{Name: "Wild Flowers", Address: "3 Ash St", Phone: "555-1003", Email: "three@example.com"},
		}
		for _, d := range daycares {
			require.NoError(t, repo.Insert(ctx, d))
		}

		req := httptest.NewRequest(http.MethodGet, "/get_daycares", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response listResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

		assert.Equal(t, 3, response.DaycaresCount)
		assert.Len(t, response.Data, response.DaycaresCount)

		trueCount, err := pgContainer.DB.NewSelect().Model((*daycare.Daycare)(nil)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, trueCount, response.DaycaresCount)

		// ascending id order
		assert.Equal(t, "Bright Start", response.Data[0].Name)
		assert.Equal(t, "Tiny Trees", response.Data[1].Name)
		assert.Equal(t, "Wild Flowers", response.Data[2].Name)
	})

	t.Run("ListDaycaresEmpty", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		req := httptest.NewRequest(http.MethodGet, "/get_daycares", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response listResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 0, response.DaycaresCount)
		assert.NotNil(t, response.Data)
		assert.Empty(t, response.Data)
	})

	t.Run("GetDaycare", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		testDaycare := &daycare.Daycare{Name: "Bright Start", Address: "1 Elm St", Phone: "555-1001", Email: "one@example.com"}
		require.NoError(t, repo.Insert(ctx, testDaycare))

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/get_daycare/%d", testDaycare.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response getResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, testDaycare.ID, response.Data[0].ID)
		assert.Equal(t, "Bright Start", response.Data[0].Name)
	})

	t.Run("GetDaycareNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		req := httptest.NewRequest(http.MethodGet, "/get_daycare/99999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "not_found", body["status"])
	})

	t.Run("UpdateDaycare", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		testDaycare := &daycare.Daycare{Name: "Old Name", Address: "1 Elm St", Phone: "555-1001", Email: "old@example.com"}
		require.NoError(t, repo.Insert(ctx, testDaycare))

		payload := map[string]interface{}{
			"name":    "New Name",
			"address": "9 Birch Rd",
			"phone":   "555-2001",
			"email":   "new@example.com",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/update_daycare/%d", testDaycare.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response updateResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "success", response.Status)
		assert.Equal(t, "New Name", response.UpdatedData.Name)
		assert.Equal(t, "9 Birch Rd", response.UpdatedData.Address)

		// updated_data matches a subsequent GET
		getReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/get_daycare/%d", testDaycare.ID), nil)
		getW := httptest.NewRecorder()
		router.ServeHTTP(getW, getReq)

		var getResp getResponse
		require.NoError(t, json.NewDecoder(getW.Body).Decode(&getResp))
		require.Len(t, getResp.Data, 1)
		assert.Equal(t, response.UpdatedData, getResp.Data[0])
	})

	t.Run("UpdateDaycareMissingField", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		testDaycare := &daycare.Daycare{Name: "Keep Me", Address: "1 Elm St", Phone: "555-1001", Email: "keep@example.com"}
		require.NoError(t, repo.Insert(ctx, testDaycare))

		// empty string counts as missing
		payload := map[string]interface{}{
			"name":    "",
			"address": "9 Birch Rd",
			"phone":   "555-2001",
			"email":   "new@example.com",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/update_daycare/%d", testDaycare.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errBody map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errBody))
		assert.Equal(t, "error", errBody["status"])
		assert.Contains(t, errBody["message"], "name")

		// no mutation happened
		unchanged, err := repo.GetByID(ctx, testDaycare.ID)
		require.NoError(t, err)
		assert.Equal(t, "Keep Me", unchanged.Name)
	})

	t.Run("UpdateDaycareNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		payload := map[string]interface{}{
			"name":    "Ghost",
			"address": "9 Birch Rd",
			"phone":   "555-2001",
			"email":   "ghost@example.com",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPut, "/update_daycare/99999", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteDaycare", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		testDaycare := &daycare.Daycare{Name: "To Delete", Address: "1 Elm St", Phone: "555-1001", Email: "bye@example.com"}
		require.NoError(t, repo.Insert(ctx, testDaycare))

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/delete_daycare/%d", testDaycare.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		count, err := pgContainer.DB.NewSelect().Model((*daycare.Daycare)(nil)).Where("id = ?", testDaycare.ID).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("DeleteDaycareNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		req := httptest.NewRequest(http.MethodDelete, "/delete_daycare/99999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidDaycareID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get_daycare/invalid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteDaycareCascades", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)

		testDaycare := &daycare.Daycare{Name: "Cascade Me", Address: "1 Elm St", Phone: "555-1001", Email: "cascade@example.com"}
		require.NoError(t, repo.Insert(ctx, testDaycare))

		classroomRepo := classroom.NewRepository(pgContainer.DB)
		room := &classroom.Classroom{Name: "Sunflowers", DaycareID: testDaycare.ID}
		require.NoError(t, classroomRepo.Insert(ctx, room))

		childRepo := child.NewRepository(pgContainer.DB)
		kid := &child.Child{Name: "Sofia", DateOfBirth: "2021-03-14", ClassroomID: &room.ID, DaycareID: testDaycare.ID}
		require.NoError(t, childRepo.Insert(ctx, kid))

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/delete_daycare/%d", testDaycare.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		classroomCount, err := pgContainer.DB.NewSelect().Model((*classroom.Classroom)(nil)).Where("daycare_id = ?", testDaycare.ID).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, classroomCount, "classrooms should cascade on daycare delete")

		childCount, err := pgContainer.DB.NewSelect().Model((*child.Child)(nil)).Where("daycare_id = ?", testDaycare.ID).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, childCount, "children should cascade on daycare delete")
	})

	t.Run("SeedScenario", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB)
		pgContainer.Seed(t)

		req := httptest.NewRequest(http.MethodGet, "/get_daycare/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response getResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "Happy Kids Daycare", response.Data[0].Name)

		delReq := httptest.NewRequest(http.MethodDelete, "/delete_daycare/1", nil)
		delW := httptest.NewRecorder()
		router.ServeHTTP(delW, delReq)
		assert.Equal(t, http.StatusOK, delW.Code)

		getReq := httptest.NewRequest(http.MethodGet, "/get_daycare/1", nil)
		getW := httptest.NewRecorder()
		router.ServeHTTP(getW, getReq)
		assert.Equal(t, http.StatusNotFound, getW.Code)

		orphaned, err := pgContainer.DB.NewSelect().Model((*classroom.Classroom)(nil)).Where("daycare_id = 1").Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, orphaned, "no classroom should still reference daycare 1")
	})
}
