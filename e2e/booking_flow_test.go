package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTestFlight はフライト1（31→44、10:00出発、2クラス）を登録する
func loadTestFlight(t *testing.T, server *TestServer) {
	t.Helper()
	body := map[string]interface{}{
		"id":                1,
		"departure_airport": 31,
		"arrival_airport":   44,
		"departure_time":    "10:00:00",
		"arrival_time":      "14:30:00",
		"seat_classes": []map[string]interface{}{
			{"upper_row": 2, "price": 300},
			{"upper_row": 20, "price": 100},
		},
	}
	rec := server.Request("POST", "/api/v1/flights", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
}

// TestE2E_HealthCheck はヘルスチェックをテスト
func TestE2E_HealthCheck(t *testing.T) {
	server := NewTestServer(t)

	rec := server.Request("GET", "/api/v1/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

// TestE2E_CompleteBookingJourney は完全な予約ジャーニーをテスト
func TestE2E_CompleteBookingJourney(t *testing.T) {
	server := NewTestServer(t)
	loadTestFlight(t, server)

	userID := "e2e-user-yamada"
	var reservationID float64

	// 1. 予約前の座席表確認
	t.Run("座席表確認", func(t *testing.T) {
		rec := server.Request("GET", "/api/v1/flights/1/seats?date=2024/03/15", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		seats := resp["seats"].(map[string]interface{})
		assert.Equal(t, "11222222222222222222", seats["A"])
	})

	// 2. フライト検索で全席空席を確認
	t.Run("フライト検索", func(t *testing.T) {
		rec := server.Request("GET", "/api/v1/flights?date=2024/03/15&from=31&to=44", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		require.Len(t, resp, 1)
		classes := resp[0]["classes"].([]interface{})
		require.Len(t, classes, 2)
		assert.Equal(t, float64(8), classes[0].(map[string]interface{})["available"])
		assert.Equal(t, float64(72), classes[1].(map[string]interface{})["available"])
	})

	// 3. 予約作成
	t.Run("予約作成", func(t *testing.T) {
		body := map[string]interface{}{
			"date":         "2024/03/15",
			"flight_id":    1,
			"seat_id":      "1A",
			"current_time": "2024/03/15-07:00:00",
		}
		rec := server.Request("POST", "/api/v1/reservations", body, map[string]string{
			"X-User-ID": userID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		reservationID = resp["id"].(float64)
		assert.Equal(t, float64(1), reservationID)
		assert.Equal(t, float64(300), resp["price"])
		assert.Equal(t, false, resp["cancelled"])
	})

	// 4. 座席表に占有が反映される
	t.Run("座席表に占有反映", func(t *testing.T) {
		rec := server.Request("GET", "/api/v1/flights/1/seats?date=2024/03/15", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		seats := resp["seats"].(map[string]interface{})
		assert.Equal(t, "X1222222222222222222", seats["A"])
		assert.Equal(t, "11222222222222222222", seats["B"])
	})

	// 5. フライト検索の空席数が減っている
	t.Run("空席数減少確認", func(t *testing.T) {
		rec := server.Request("GET", "/api/v1/flights?date=2024/03/15&from=31&to=44", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		classes := resp[0]["classes"].([]interface{})
		assert.Equal(t, float64(7), classes[0].(map[string]interface{})["available"])
	})

	// 6. 予約一覧確認
	t.Run("予約一覧確認", func(t *testing.T) {
		rec := server.Request("GET", "/api/v1/reservations", nil, map[string]string{
			"X-User-ID": userID,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, reservationID, resp[0]["id"])
		assert.Equal(t, "1A", resp[0]["seat_id"])
		assert.Equal(t, float64(31), resp[0]["departure_airport"])
		assert.Equal(t, "10:00:00", resp[0]["departure_time"])
	})
}

// TestE2E_ReservationConflict は予約競合をテスト
func TestE2E_ReservationConflict(t *testing.T) {
	server := NewTestServer(t)
	loadTestFlight(t, server)

	body := map[string]interface{}{
		"date":         "2024/03/15",
		"flight_id":    1,
		"seat_id":      "5C",
		"current_time": "2024/03/15-07:00:00",
	}

	t.Run("ユーザーAが予約成功", func(t *testing.T) {
		rec := server.Request("POST", "/api/v1/reservations", body, map[string]string{
			"X-User-ID": "user-A",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("ユーザーBが同じ座席を予約しようとして失敗", func(t *testing.T) {
		rec := server.Request("POST", "/api/v1/reservations", body, map[string]string{
			"X-User-ID": "user-B",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "already reserved", resp["error"])
	})

	t.Run("別の日付なら予約できる", func(t *testing.T) {
		otherDay := map[string]interface{}{
			"date":         "2024/03/16",
			"flight_id":    1,
			"seat_id":      "5C",
			"current_time": "2024/03/15-07:00:00",
		}
		rec := server.Request("POST", "/api/v1/reservations", otherDay, map[string]string{
			"X-User-ID": "user-B",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

// TestE2E_CancelAndRebook はキャンセル後の再予約をテスト
func TestE2E_CancelAndRebook(t *testing.T) {
	server := NewTestServer(t)
	loadTestFlight(t, server)

	var reservationID float64

	t.Run("ユーザーAが予約", func(t *testing.T) {
		body := map[string]interface{}{
			"date":         "2024/03/15",
			"flight_id":    1,
			"seat_id":      "3B",
			"current_time": "2024/03/15-07:00:00",
		}
		rec := server.Request("POST", "/api/v1/reservations", body, map[string]string{
			"X-User-ID": "user-A",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		reservationID = resp["id"].(float64)
	})

	t.Run("ユーザーBはキャンセルできない", func(t *testing.T) {
		path := fmt.Sprintf("/api/v1/reservations/%.0f/cancel", reservationID)
		rec := server.Request("POST", path, map[string]interface{}{
			"current_time": "2024/03/15-07:10:00",
		}, map[string]string{
			"X-User-ID": "user-B",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ユーザーAがキャンセル", func(t *testing.T) {
		path := fmt.Sprintf("/api/v1/reservations/%.0f/cancel", reservationID)
		rec := server.Request("POST", path, map[string]interface{}{
			"current_time": "2024/03/15-07:10:00",
		}, map[string]string{
			"X-User-ID": "user-A",
		})
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("ユーザーBが再予約に成功", func(t *testing.T) {
		body := map[string]interface{}{
			"date":         "2024/03/15",
			"flight_id":    1,
			"seat_id":      "3B",
			"current_time": "2024/03/15-07:15:00",
		}
		rec := server.Request("POST", "/api/v1/reservations", body, map[string]string{
			"X-User-ID": "user-B",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

// TestE2E_DeadlineEnforcement は出発2時間前の締め切りをテスト
func TestE2E_DeadlineEnforcement(t *testing.T) {
	server := NewTestServer(t)
	loadTestFlight(t, server)

	t.Run("締め切り後の予約は拒否される", func(t *testing.T) {
		body := map[string]interface{}{
			"date":         "2024/03/15",
			"flight_id":    1,
			"seat_id":      "1A",
			"current_time": "2024/03/15-08:30:00",
		}
		rec := server.Request("POST", "/api/v1/reservations", body, map[string]string{
			"X-User-ID": "user-late",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "too late", resp["error"])
	})

	t.Run("締め切り後のキャンセルも拒否される", func(t *testing.T) {
		body := map[string]interface{}{
			"date":         "2024/03/15",
			"flight_id":    1,
			"seat_id":      "2D",
			"current_time": "2024/03/15-07:00:00",
		}
		rec := server.Request("POST", "/api/v1/reservations", body, map[string]string{
			"X-User-ID": "user-A",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)

		path := fmt.Sprintf("/api/v1/reservations/%.0f/cancel", resp["id"].(float64))
		rec = server.Request("POST", path, map[string]interface{}{
			"current_time": "2024/03/15-08:30:00",
		}, map[string]string{
			"X-User-ID": "user-A",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
