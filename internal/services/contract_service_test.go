package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goxu-service/internal/models"
	"goxu-service/pkg/common"
)

func newContractService(db *gorm.DB) *ContractService {
	return NewContractService(db, NewNotificationService(db, nil, nil))
}

func TestCreateContractNotifiesSigner(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService(db)
	user := seedUser(t, db, models.RolePartner, 0)

	result, err := svc.CreateContract(CreateContractDTO{
		UserID:  user.ID,
		Title:   "Hợp đồng hợp tác",
		Content: "Điều khoản hợp tác giữa hai bên.",
	})
	require.NoError(t, err)

	contract := result.(common.SuccessResponse).Data.(models.Contract)
	assert.Equal(t, models.ContractDraft, contract.Status)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignContractIsOneShot(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService(db)
	user := seedUser(t, db, models.RolePartner, 0)
	other := seedUser(t, db, models.RolePartner, 0)

	created, err := svc.CreateContract(CreateContractDTO{UserID: user.ID, Title: "HD"})
	require.NoError(t, err)
	contract := created.(common.SuccessResponse).Data.(models.Contract)

	// Someone else's signature attempt changes nothing.
	result, err := svc.Sign(other.ID, contract.ID)
	require.NoError(t, err)
	_, ok := result.(common.ErrorResponse)
	require.True(t, ok)

	result, err = svc.Sign(user.ID, contract.ID)
	require.NoError(t, err)
	_, ok = result.(common.SuccessResponse)
	require.True(t, ok)

	var stored models.Contract
	require.NoError(t, db.First(&stored, contract.ID).Error)
	assert.Equal(t, models.ContractSigned, stored.Status)
	assert.NotNil(t, stored.SignedAt)

	// A signed contract cannot be signed again.
	result, err = svc.Sign(user.ID, contract.ID)
	require.NoError(t, err)
	_, ok = result.(common.ErrorResponse)
	assert.True(t, ok)
}

func TestRenderPDFAccessControl(t *testing.T) {
	db := newTestDB(t)
	svc := newContractService(db)
	user := seedUser(t, db, models.RolePartner, 0)
	other := seedUser(t, db, models.RolePartner, 0)

	created, err := svc.CreateContract(CreateContractDTO{
		UserID:  user.ID,
		Title:   "Hợp đồng hợp tác",
		Content: "Điều khoản.",
	})
	require.NoError(t, err)
	contract := created.(common.SuccessResponse).Data.(models.Contract)

	pdf, filename, err := svc.RenderPDF(user.ID, contract.ID, false)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, ".pdf")
	assert.Equal(t, "%PDF", string(pdf[:4]))

	_, _, err = svc.RenderPDF(other.ID, contract.ID, false)
	assert.Error(t, err, "another user cannot download the contract")

	_, _, err = svc.RenderPDF(other.ID, contract.ID, true)
	assert.NoError(t, err, "admins can download any contract")
}
