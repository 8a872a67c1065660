package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bizlead/bizlead-go/pkg/configs"
	constants "github.com/bizlead/bizlead-go/pkg/types"
	structure "github.com/bizlead/bizlead-go/pkg/types/structures"
)

func newTestConfig(baseURL string) *configs.EnvConfig {
	config := &configs.EnvConfig{}
	config.Google.APIKey = "test-key"
	config.Google.GeocodeURL = baseURL + "/geocode"
	config.Google.NearbySearchURL = baseURL + "/nearby"
	config.Google.PlaceDetailsURL = baseURL + "/details"
	config.Search.MaxPages = 3
	config.Search.RadiusMeters = 5000
	return config
}

func TestGeocode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "강남역" {
			t.Errorf("address 파라미터 = %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key 파라미터 = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"results": []map[string]interface{}{
				{"geometry": map[string]interface{}{"location": map[string]float64{"lat": 37.49, "lng": 127.02}}},
				{"geometry": map[string]interface{}{"location": map[string]float64{"lat": 0, "lng": 0}}},
			},
		})
	}))
	defer ts.Close()

	c := NewGoogleMapsAPIClient(newTestConfig(ts.URL))

	coords, err := c.Geocode("강남역")
	if err != nil {
		t.Fatalf("Geocode() 오류 = %v", err)
	}
	// 첫 번째 후보의 좌표를 사용해야 함
	if coords.Lat != 37.49 || coords.Lng != 127.02 {
		t.Errorf("좌표 = %+v", coords)
	}
}

func TestGeocodeNoCandidate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ZERO_RESULTS",
			"results": []interface{}{},
		})
	}))
	defer ts.Close()

	c := NewGoogleMapsAPIClient(newTestConfig(ts.URL))

	_, err := c.Geocode("어디에도 없는 곳")
	if !errors.Is(err, constants.ErrLocationNotFound) {
		t.Fatalf("ErrLocationNotFound가 아님: %v", err)
	}
}

func TestNearbySearchPageTokenMode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("pagetoken"); got != "token-abc" {
			t.Errorf("pagetoken 파라미터 = %q", got)
		}
		// 토큰 모드에서는 키워드/좌표를 보내면 안 됨
		if q.Get("keyword") != "" || q.Get("location") != "" {
			t.Errorf("토큰 모드에 keyword/location이 포함됨: %v", q)
		}
		json.NewEncoder(w).Encode(structure.NearbySearchResponse{Status: "OK"})
	}))
	defer ts.Close()

	c := NewGoogleMapsAPIClient(newTestConfig(ts.URL))

	if _, err := c.NearbySearchPage("token-abc"); err != nil {
		t.Fatalf("NearbySearchPage() 오류 = %v", err)
	}
}

func TestNearbySearchParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("keyword") != "카페" {
			t.Errorf("keyword 파라미터 = %q", q.Get("keyword"))
		}
		if q.Get("radius") != "5000" {
			t.Errorf("radius 파라미터 = %q", q.Get("radius"))
		}
		if q.Get("location") == "" {
			t.Error("location 파라미터가 비어 있음")
		}
		json.NewEncoder(w).Encode(structure.NearbySearchResponse{Status: "OK"})
	}))
	defer ts.Close()

	c := NewGoogleMapsAPIClient(newTestConfig(ts.URL))

	if _, err := c.NearbySearch(37.49, 127.02, "카페"); err != nil {
		t.Fatalf("NearbySearch() 오류 = %v", err)
	}
}

func TestNearbySearchDefaultRadius(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 반경 미설정 시 기본값을 사용해야 함
		if got := r.URL.Query().Get("radius"); got != "5000" {
			t.Errorf("radius 파라미터 = %q, 기대값 5000", got)
		}
		json.NewEncoder(w).Encode(structure.NearbySearchResponse{Status: "OK"})
	}))
	defer ts.Close()

	config := newTestConfig(ts.URL)
	config.Search.RadiusMeters = 0
	c := NewGoogleMapsAPIClient(config)

	if _, err := c.NearbySearch(37.49, 127.02, "카페"); err != nil {
		t.Fatalf("NearbySearch() 오류 = %v", err)
	}
}

func TestPlaceDetailsStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "NOT_FOUND"})
	}))
	defer ts.Close()

	c := NewGoogleMapsAPIClient(newTestConfig(ts.URL))

	if _, err := c.PlaceDetails("missing-id"); err == nil {
		t.Fatal("상태 오류가 전파되지 않음")
	}
}

func TestHTTPErrorSurfaced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := NewGoogleMapsAPIClient(newTestConfig(ts.URL))

	if _, err := c.NearbySearch(0, 0, "카페"); err == nil {
		t.Fatal("HTTP 오류가 전파되지 않음")
	}
}
