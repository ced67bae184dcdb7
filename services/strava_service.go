package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"backend/config"
	"backend/hydration"
	"backend/models"

	"golang.org/x/oauth2"
)

const stravaAPIBase = "https://www.strava.com/api/v3"

var stravaEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.strava.com/oauth/authorize",
	TokenURL: "https://www.strava.com/oauth/token",
}

// StravaService connects a user's Strava account and imports recent
// activities as workout sessions, running the hydration engine on each.
type StravaService struct {
	client *http.Client
	oauth  *oauth2.Config
}

func NewStravaService() *StravaService {
	return &StravaService{
		client: &http.Client{Timeout: 15 * time.Second},
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("STRAVA_CLIENT_ID"),
			ClientSecret: os.Getenv("STRAVA_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("STRAVA_REDIRECT_URL"),
			Scopes:       []string{"activity:read"},
			Endpoint:     stravaEndpoint,
		},
	}
}

// AuthURL builds the consent URL for the connect flow.
func (s *StravaService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the callback code for tokens and stores them on the user.
func (s *StravaService) Exchange(ctx context.Context, user *models.User, code string) error {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("strava token exchange: %w", err)
	}

	user.StravaAccessToken = token.AccessToken
	user.StravaRefreshToken = token.RefreshToken
	user.StravaExpiresAt = token.Expiry.Unix()
	return config.DB.Save(user).Error
}

// accessToken returns a valid access token, refreshing and re-persisting it
// when the stored one has expired.
func (s *StravaService) accessToken(ctx context.Context, user *models.User) (string, error) {
	if user.StravaAccessToken == "" {
		return "", fmt.Errorf("strava not connected")
	}

	stored := &oauth2.Token{
		AccessToken:  user.StravaAccessToken,
		RefreshToken: user.StravaRefreshToken,
		Expiry:       time.Unix(user.StravaExpiresAt, 0),
	}
	if stored.Valid() {
		return stored.AccessToken, nil
	}

	token, err := s.oauth.TokenSource(ctx, stored).Token()
	if err != nil {
		return "", fmt.Errorf("strava token refresh: %w", err)
	}

	user.StravaAccessToken = token.AccessToken
	user.StravaRefreshToken = token.RefreshToken
	user.StravaExpiresAt = token.Expiry.Unix()
	if err := config.DB.Save(user).Error; err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

type stravaActivity struct {
	ID               int64    `json:"id"`
	MovingTime       float64  `json:"moving_time"` // seconds
	AverageHeartrate *float64 `json:"average_heartrate"`
	AverageTemp      *float64 `json:"average_temp"` // °C
	Calories         float64  `json:"calories"`
}

// SyncActivities imports the user's recent Strava activities. Activities
// without heart-rate data and already-imported ones are skipped. Returns the
// number of new sessions created.
func (s *StravaService) SyncActivities(ctx context.Context, user *models.User) (int, error) {
	accessToken, err := s.accessToken(ctx, user)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/athlete/activities?per_page=30", stravaAPIBase), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("strava request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read strava response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("strava api error (%d): %s", resp.StatusCode, string(body))
	}

	var activities []stravaActivity
	if err := json.Unmarshal(body, &activities); err != nil {
		return 0, fmt.Errorf("decode strava response error: %w", err)
	}

	sex := hydration.SexMale
	if user.Sex != nil {
		if parsed, err := hydration.ParseSex(*user.Sex); err == nil {
			sex = parsed
		}
	}

	imported := 0
	for _, a := range activities {
		if a.AverageHeartrate == nil || a.MovingTime <= 0 {
			continue
		}

		activityID := fmt.Sprintf("%d", a.ID)
		exists, err := HasStravaActivity(activityID)
		if err != nil {
			return imported, err
		}
		if exists {
			continue
		}

		durationMin := a.MovingTime / 60
		tempC := 22.0 // engine default when Strava reports no temperature
		if a.AverageTemp != nil {
			tempC = *a.AverageTemp
		}

		var weightKg float64
		if user.WeightKg != nil {
			weightKg = *user.WeightKg
		}

		result := hydration.Run(weightKg, sex, durationMin, *a.AverageHeartrate, tempC)

		session := models.WorkoutSession{
			UserID:           user.ID,
			StravaActivityID: &activityID,
			DurationMin:      durationMin,
			Calories:         a.Calories,
			AvgHeartRate:     *a.AverageHeartrate,
			TemperatureC:     a.AverageTemp,
			WeightKg:         user.WeightKg,
			SweatRate:        result.SweatRateLPerHr,
			TotalSweatLoss:   result.TotalSweatLossL,
			WaterNeededML:    result.WaterML,
			SodiumMg:         result.SodiumMG,
			PotassiumMg:      result.PotassiumMG,
			MagnesiumMg:      result.MagnesiumMG,
		}
		if err := SaveSession(&session); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}
