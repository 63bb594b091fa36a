//go:build e2e

package transfer_test

import (
	"net/http"
	"strings"
	"testing"

	"pawhaven/internal/domain/user"
	"pawhaven/internal/handler/dto/request"
	"pawhaven/internal/handler/dto/response"
	"pawhaven/tests/common/authtest"
	"pawhaven/tests/common/dbtest"
	"pawhaven/tests/common/httptest"
	"pawhaven/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	transfersURL = "/api/transfers"
	claimURL     = "/api/transfers/claim"
)

type TransferSuite struct {
	e2e.SharedSuite
}

func (s *TransferSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestTransferSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TransferSuite))
}

func (s *TransferSuite) initiateURL(animalID uuid.UUID) string {
	return "/api/animals/" + animalID.String() + "/transfer"
}

// initiate posts a transfer request as the shelter and decodes the outcome.
func (s *TransferSuite) initiate(t *testing.T, token string, animalID uuid.UUID, recipientEmail string, wantCode int) response.TransferInitiatedResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.initiateURL(animalID),
		request.InitiateTransferRequest{RecipientEmail: recipientEmail}, token)
	require.Equal(t, wantCode, w.Code, w.Body.String())

	var out response.TransferInitiatedResponse
	if wantCode == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &out))
	}
	return out
}

// =============================================================================
// TestInitiate - transfer initiation including mode selection
// =============================================================================

func (s *TransferSuite) TestInitiate() {
	s.Run("registered recipient completes immediately", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		adopterID := dbtest.CreateTestUser(t, s.DB, "adopter@example.com", string(user.RoleIndividual))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")

		token := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)

		// Recipient email resolution is case-insensitive.
		out := s.initiate(t, token, animalID, "Adopter@Example.COM", http.StatusOK)
		require.Equal(t, "immediate", out.Mode)
		require.NotNil(t, out.RecipientUserID)
		require.Equal(t, adopterID, *out.RecipientUserID)
		require.Empty(t, out.ClaimToken)

		var ownerID uuid.UUID
		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT owner_user_id, adoption_status FROM animals WHERE id = $1", animalID).
			Scan(&ownerID, &status)
		require.NoError(t, err)
		require.Equal(t, adopterID, ownerID)
		require.Equal(t, "adopted", status)

		// The recipient got a dog_received notification.
		var count int
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM notifications WHERE user_id = $1 AND type = 'dog_received'", adopterID).
			Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("unregistered recipient gets a pending claim", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Mochi")

		token := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)

		out := s.initiate(t, token, animalID, "stranger@example.com", http.StatusOK)
		require.Equal(t, "deferred", out.Mode)
		require.NotNil(t, out.TransferID)
		require.Len(t, out.ClaimToken, 12)
		require.NotNil(t, out.ExpiresAt)

		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT adoption_status FROM animals WHERE id = $1", animalID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "pending_transfer", status)
	})

	s.Run("second pending transfer for the same animal conflicts", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Mochi")

		token := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)

		s.initiate(t, token, animalID, "first@example.com", http.StatusOK)
		s.initiate(t, token, animalID, "second@example.com", http.StatusConflict)
	})

	s.Run("another shelter's animal reads as not found", func() {
		t := s.T()

		ownerShelterID := dbtest.CreateTestUser(t, s.DB, "owner-shelter@example.com", string(user.RoleShelter))
		dbtest.CreateTestUser(t, s.DB, "other-shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, ownerShelterID, "Biscuit")

		token := authtest.LoginUser(t, s.Router, "other-shelter@example.com", dbtest.TestPassword)
		s.initiate(t, token, animalID, "anyone@example.com", http.StatusNotFound)
	})

	s.Run("individual accounts cannot initiate", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		dbtest.CreateTestUser(t, s.DB, "individual@example.com", string(user.RoleIndividual))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")

		token := authtest.LoginUser(t, s.Router, "individual@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.initiateURL(animalID),
			request.InitiateTransferRequest{RecipientEmail: "anyone@example.com"}, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestClaim - claim resolution against the full stack
// =============================================================================

func (s *TransferSuite) TestClaim() {
	s.Run("recipient registered after initiation can claim", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")

		shelterToken := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)
		out := s.initiate(t, shelterToken, animalID, "newcomer@example.com", http.StatusOK)
		require.Equal(t, "deferred", out.Mode)

		// Register the claim recipient after the transfer was initiated.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{
				Email:       "newcomer@example.com",
				Password:    "password123",
				DisplayName: "Newcomer",
				Role:        "individual",
			}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		claimToken := authtest.LoginUser(t, s.Router, "newcomer@example.com", "password123")

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL,
			request.ClaimTransferRequest{ClaimToken: out.ClaimToken}, claimToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var claim response.ClaimResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &claim))
		require.Equal(t, animalID, claim.AnimalID)
		require.Equal(t, "Biscuit", claim.AnimalName)

		var status string
		var ownerID uuid.UUID
		err := s.DB.QueryRow(t.Context(),
			"SELECT adoption_status, owner_user_id FROM animals WHERE id = $1", animalID).
			Scan(&status, &ownerID)
		require.NoError(t, err)
		require.Equal(t, "adopted", status)
		require.Equal(t, claim.OwnerUserID, ownerID)

		// Completion and its notification land together.
		var notifications int
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM notifications WHERE user_id = $1 AND type = 'dog_received'", ownerID).
			Scan(&notifications)
		require.NoError(t, err)
		require.Equal(t, 1, notifications)

		// A second claim of the same token reports completion.
		cw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL,
			request.ClaimTransferRequest{ClaimToken: out.ClaimToken}, claimToken)
		require.Equal(t, http.StatusConflict, cw2.Code, cw2.Body.String())
	})

	s.Run("claim token is matched case-insensitively", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")
		shelterToken := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)
		out := s.initiate(t, shelterToken, animalID, "adopter@example.com", http.StatusOK)

		dbtest.CreateTestUser(t, s.DB, "adopter@example.com", string(user.RoleIndividual))
		claimToken := authtest.LoginUser(t, s.Router, "adopter@example.com", dbtest.TestPassword)

		lowered := "  " + strings.ToLower(out.ClaimToken) + " "
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL,
			request.ClaimTransferRequest{ClaimToken: lowered}, claimToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())
	})

	s.Run("wrong account is rejected", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")
		shelterToken := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)
		out := s.initiate(t, shelterToken, animalID, "intended@example.com", http.StatusOK)

		dbtest.CreateTestUser(t, s.DB, "interloper@example.com", string(user.RoleIndividual))
		otherToken := authtest.LoginUser(t, s.Router, "interloper@example.com", dbtest.TestPassword)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL,
			request.ClaimTransferRequest{ClaimToken: out.ClaimToken}, otherToken)
		require.Equal(t, http.StatusForbidden, cw.Code, cw.Body.String())
	})

	s.Run("unknown token is not found", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "adopter@example.com", string(user.RoleIndividual))
		token := authtest.LoginUser(t, s.Router, "adopter@example.com", dbtest.TestPassword)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL,
			request.ClaimTransferRequest{ClaimToken: "ZZZZZZZ99999"}, token)
		require.Equal(t, http.StatusNotFound, cw.Code, cw.Body.String())
	})

	s.Run("expired transfer is gone and the animal is released", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")
		shelterToken := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)
		out := s.initiate(t, shelterToken, animalID, "slowpoke@example.com", http.StatusOK)

		dbtest.ForceTransferExpiry(t, s.DB, *out.TransferID)

		dbtest.CreateTestUser(t, s.DB, "slowpoke@example.com", string(user.RoleIndividual))
		claimToken := authtest.LoginUser(t, s.Router, "slowpoke@example.com", dbtest.TestPassword)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL,
			request.ClaimTransferRequest{ClaimToken: out.ClaimToken}, claimToken)
		require.Equal(t, http.StatusGone, cw.Code, cw.Body.String())

		// Lazy expiry persisted the flip and put the animal back up.
		var transferStatus, animalStatus string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM pending_transfers WHERE id = $1", *out.TransferID).Scan(&transferStatus)
		require.NoError(t, err)
		require.Equal(t, "expired", transferStatus)

		err = s.DB.QueryRow(t.Context(),
			"SELECT adoption_status FROM animals WHERE id = $1", animalID).Scan(&animalStatus)
		require.NoError(t, err)
		require.Equal(t, "available", animalStatus)
	})

	s.Run("cancelled transfer is gone", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")
		shelterToken := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)
		out := s.initiate(t, shelterToken, animalID, "waverer@example.com", http.StatusOK)

		cancelW := httptest.PerformRequest(t, s.Router, http.MethodPost,
			transfersURL+"/"+out.TransferID.String()+"/cancel", nil, shelterToken)
		require.Equal(t, http.StatusNoContent, cancelW.Code, cancelW.Body.String())

		dbtest.CreateTestUser(t, s.DB, "waverer@example.com", string(user.RoleIndividual))
		claimToken := authtest.LoginUser(t, s.Router, "waverer@example.com", dbtest.TestPassword)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL,
			request.ClaimTransferRequest{ClaimToken: out.ClaimToken}, claimToken)
		require.Equal(t, http.StatusGone, cw.Code, cw.Body.String())

		var animalStatus string
		err := s.DB.QueryRow(t.Context(),
			"SELECT adoption_status FROM animals WHERE id = $1", animalID).Scan(&animalStatus)
		require.NoError(t, err)
		require.Equal(t, "available", animalStatus)
	})
}

// =============================================================================
// TestDashboard - shelter-facing list and detail
// =============================================================================

func (s *TransferSuite) TestDashboard() {
	s.Run("list shows the shelter's transfers with effective status", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")
		otherAnimalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Mochi")

		shelterToken := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)
		first := s.initiate(t, shelterToken, animalID, "one@example.com", http.StatusOK)
		s.initiate(t, shelterToken, otherAnimalID, "two@example.com", http.StatusOK)

		dbtest.ForceTransferExpiry(t, s.DB, *first.TransferID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, transfersURL, nil, shelterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var views []response.TransferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
		require.Len(t, views, 2)

		statuses := map[uuid.UUID]string{}
		for _, v := range views {
			statuses[v.ID] = v.Status
		}
		require.Equal(t, "expired", statuses[*first.TransferID])

		// The list read doubles as the expiry sweep: the flip is durable
		// and the animal is adoptable again.
		var persisted string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM pending_transfers WHERE id = $1", *first.TransferID).Scan(&persisted)
		require.NoError(t, err)
		require.Equal(t, "expired", persisted)

		var animalStatus string
		err = s.DB.QueryRow(t.Context(),
			"SELECT adoption_status FROM animals WHERE id = $1", animalID).Scan(&animalStatus)
		require.NoError(t, err)
		require.Equal(t, "available", animalStatus)
	})

	s.Run("transfers are scoped to the owning shelter", func() {
		t := s.T()

		shelterID := dbtest.CreateTestUser(t, s.DB, "shelter@example.com", string(user.RoleShelter))
		dbtest.CreateTestUser(t, s.DB, "rival@example.com", string(user.RoleShelter))
		animalID := dbtest.CreateTestAnimal(t, s.DB, shelterID, "Biscuit")

		shelterToken := authtest.LoginUser(t, s.Router, "shelter@example.com", dbtest.TestPassword)
		out := s.initiate(t, shelterToken, animalID, "one@example.com", http.StatusOK)

		rivalToken := authtest.LoginUser(t, s.Router, "rival@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, transfersURL, nil, rivalToken)
		require.Equal(t, http.StatusOK, w.Code)
		var views []response.TransferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
		require.Empty(t, views)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			transfersURL+"/"+out.TransferID.String(), nil, rivalToken)
		require.Equal(t, http.StatusNotFound, dw.Code, dw.Body.String())
	})
}
