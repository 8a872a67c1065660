package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bizlead/bizlead-go/pkg/configs"
	constants "github.com/bizlead/bizlead-go/pkg/types"
	request "github.com/bizlead/bizlead-go/pkg/types/dtos/requests"
	structure "github.com/bizlead/bizlead-go/pkg/types/structures"
)

// fakeMaps는 지오코딩/주변 검색/상세 조회 업스트림을 흉내내는 테스트 서버입니다
type fakeMaps struct {
	mu            sync.Mutex
	nearbyCalls   int
	geocodeStatus string
	pages         []structure.NearbySearchResponse
	failDetails   map[string]bool
}

func (f *fakeMaps) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geocode":
			status := f.geocodeStatus
			if status == "" {
				status = constants.STATUS_OK
			}
			resp := map[string]interface{}{"status": status, "results": []interface{}{}}
			if status == constants.STATUS_OK {
				resp["results"] = []map[string]interface{}{
					{"geometry": map[string]interface{}{"location": map[string]float64{"lat": 37.5, "lng": 127.0}}},
				}
			}
			json.NewEncoder(w).Encode(resp)

		case "/nearby":
			f.mu.Lock()
			idx := f.nearbyCalls
			f.nearbyCalls++
			f.mu.Unlock()

			// 첫 요청은 좌표+키워드, 이후 요청은 직전 페이지의 토큰이어야 함
			token := r.URL.Query().Get("pagetoken")
			if idx == 0 && token != "" {
				t.Errorf("첫 페이지 요청에 토큰이 포함됨: %q", token)
			}
			if idx > 0 && token != f.pages[idx-1].NextPageToken {
				t.Errorf("페이지 %d 토큰 = %q, 기대값 %q", idx+1, token, f.pages[idx-1].NextPageToken)
			}

			if idx < len(f.pages) {
				json.NewEncoder(w).Encode(f.pages[idx])
				return
			}
			json.NewEncoder(w).Encode(structure.NearbySearchResponse{Status: constants.STATUS_OK})

		case "/details":
			id := r.URL.Query().Get("place_id")
			if f.failDetails[id] {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(structure.PlaceDetailsResponse{
				Status: constants.STATUS_OK,
				Result: structure.PlaceDetail{
					Website:              "https://" + id + ".example.com",
					FormattedPhoneNumber: "02-" + id,
					FormattedAddress:     id + " 상세주소",
				},
			})

		default:
			t.Errorf("알 수 없는 경로: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestConfig(baseURL string, maxPages int) *configs.EnvConfig {
	config := &configs.EnvConfig{}
	config.Google.APIKey = "test-key"
	config.Google.GeocodeURL = baseURL + "/geocode"
	config.Google.NearbySearchURL = baseURL + "/nearby"
	config.Google.PlaceDetailsURL = baseURL + "/details"
	config.Search.MaxPages = maxPages
	config.Search.PageDelaySeconds = 0 // 테스트에서는 토큰 대기 없음
	config.Search.RadiusMeters = 5000
	return config
}

// buildPages는 페이지당 perPage개 레코드를 가진 n개 페이지를 생성합니다.
// withTrailingToken이 true면 마지막 페이지에도 다음 페이지 토큰을 붙입니다.
func buildPages(n, perPage int, withTrailingToken bool) []structure.NearbySearchResponse {
	pages := make([]structure.NearbySearchResponse, n)
	for p := 0; p < n; p++ {
		page := structure.NearbySearchResponse{Status: constants.STATUS_OK}
		for r := 0; r < perPage; r++ {
			page.Results = append(page.Results, structure.NearbyPlace{
				PlaceID:  fmt.Sprintf("p%d-%d", p+1, r+1),
				Name:     fmt.Sprintf("가게 %d-%d", p+1, r+1),
				Vicinity: fmt.Sprintf("%d번가 %d", p+1, r+1),
				Types:    []string{"cafe", "point_of_interest", "establishment"},
			})
		}
		if p < n-1 || withTrailingToken {
			page.NextPageToken = fmt.Sprintf("token-%d", p+1)
		}
		pages[p] = page
	}
	return pages
}

func TestCollectPlacesOrderedAcrossPages(t *testing.T) {
	fake := &fakeMaps{pages: buildPages(3, 2, false)}
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	s := NewSearchService(newTestConfig(ts.URL, 3))

	places, err := s.CollectPlaces(request.SearchBody{ServiceType: "카페", Location: "서울"})
	if err != nil {
		t.Fatalf("CollectPlaces() 오류 = %v", err)
	}

	// N×K개 레코드가 페이지-레코드 순서대로 누적되어야 함
	want := []string{"p1-1", "p1-2", "p2-1", "p2-2", "p3-1", "p3-2"}
	if len(places) != len(want) {
		t.Fatalf("결과 수 = %d, 기대값 %d", len(places), len(want))
	}
	for i, id := range want {
		if places[i].PlaceID != id {
			t.Errorf("places[%d].PlaceID = %q, 기대값 %q", i, places[i].PlaceID, id)
		}
		if places[i].Website != "https://"+id+".example.com" {
			t.Errorf("places[%d].Website = %q", i, places[i].Website)
		}
		if places[i].FormattedAddress != id+" 상세주소" {
			t.Errorf("places[%d].FormattedAddress = %q", i, places[i].FormattedAddress)
		}
	}
}

func TestCollectPlacesPageCap(t *testing.T) {
	// 3번째 페이지에 토큰이 있어도 4번째 요청은 발생하면 안 됨
	fake := &fakeMaps{pages: buildPages(3, 1, true)}
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	s := NewSearchService(newTestConfig(ts.URL, 3))

	places, err := s.CollectPlaces(request.SearchBody{ServiceType: "식당", Location: "부산"})
	if err != nil {
		t.Fatalf("CollectPlaces() 오류 = %v", err)
	}

	if fake.nearbyCalls != 3 {
		t.Errorf("주변 검색 호출 수 = %d, 기대값 3", fake.nearbyCalls)
	}
	if len(places) != 3 {
		t.Errorf("결과 수 = %d, 기대값 3", len(places))
	}
}

func TestCollectPlacesDetailFailureDefaults(t *testing.T) {
	fake := &fakeMaps{
		pages:       buildPages(1, 3, false),
		failDetails: map[string]bool{"p1-2": true},
	}
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	s := NewSearchService(newTestConfig(ts.URL, 3))

	places, err := s.CollectPlaces(request.SearchBody{ServiceType: "카페", Location: "서울"})
	if err != nil {
		t.Fatalf("상세 조회 실패가 전체 검색을 중단시킴: %v", err)
	}
	if len(places) != 3 {
		t.Fatalf("결과 수 = %d, 기대값 3", len(places))
	}

	// 실패한 레코드는 빈 보강 필드로 유지되어야 함
	failed := places[1]
	if failed.PlaceID != "p1-2" {
		t.Fatalf("순서가 유지되지 않음: %q", failed.PlaceID)
	}
	if failed.Website != "" || failed.Phone != "" || failed.FormattedAddress != "" {
		t.Errorf("실패 레코드의 보강 필드가 비어있지 않음: %+v", failed)
	}
	if failed.Name == "" || failed.Vicinity == "" {
		t.Errorf("검색 결과 필드가 유실됨: %+v", failed)
	}
}

func TestCollectPlacesUpstreamStatusError(t *testing.T) {
	fake := &fakeMaps{pages: []structure.NearbySearchResponse{{Status: "REQUEST_DENIED"}}}
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	s := NewSearchService(newTestConfig(ts.URL, 3))

	_, err := s.CollectPlaces(request.SearchBody{ServiceType: "카페", Location: "서울"})
	if err == nil {
		t.Fatal("업스트림 상태 오류가 전파되지 않음")
	}
	if !strings.Contains(err.Error(), "REQUEST_DENIED") {
		t.Errorf("오류 메시지에 상태가 없음: %v", err)
	}
}

func TestCollectPlacesLocationNotFound(t *testing.T) {
	fake := &fakeMaps{geocodeStatus: constants.STATUS_ZERO_RESULTS}
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	s := NewSearchService(newTestConfig(ts.URL, 3))

	_, err := s.CollectPlaces(request.SearchBody{ServiceType: "카페", Location: "없는 곳"})
	if !errors.Is(err, constants.ErrLocationNotFound) {
		t.Fatalf("ErrLocationNotFound가 아님: %v", err)
	}
	if fake.nearbyCalls != 0 {
		t.Errorf("지오코딩 실패 후 주변 검색이 호출됨: %d회", fake.nearbyCalls)
	}
}

func TestCollectPlacesZeroResults(t *testing.T) {
	fake := &fakeMaps{pages: []structure.NearbySearchResponse{{Status: constants.STATUS_ZERO_RESULTS}}}
	ts := httptest.NewServer(fake.handler(t))
	defer ts.Close()

	s := NewSearchService(newTestConfig(ts.URL, 3))

	places, err := s.CollectPlaces(request.SearchBody{ServiceType: "카페", Location: "서울"})
	if err != nil {
		t.Fatalf("빈 페이지가 오류로 처리됨: %v", err)
	}
	if len(places) != 0 {
		t.Errorf("결과 수 = %d, 기대값 0", len(places))
	}
}
