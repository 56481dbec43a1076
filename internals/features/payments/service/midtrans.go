package service

import (
	"context"
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	registrationService "eventku_backend/internals/features/registrations/service"
)

var (
	SnapClient snap.Client
	CoreClient coreapi.Client
)

// InitMidtrans menginisialisasi Snap & Core API client dengan server key.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
	CoreClient.New(serverKey, env)
}

// MidtransGateway mengimplementasikan CheckoutGateway di atas Midtrans Snap.
type MidtransGateway struct{}

func NewMidtransGateway() *MidtransGateway {
	return &MidtransGateway{}
}

// CreateSession membuat hosted checkout session; redirect URL dari Snap
// dipakai frontend untuk melanjutkan pembayaran.
func (g *MidtransGateway) CreateSession(ctx context.Context, req registrationService.CheckoutRequest) (*registrationService.CheckoutSession, error) {
	amount := toMinorUnits(req.Amount)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.UserName,
			Email: req.UserEmail,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    req.EventID.String(),
			Name:  "Registration: " + req.EventTitle,
			Price: amount,
			Qty:   1,
		}},
		Callbacks: &snap.Callbacks{Finish: req.SuccessURL},
	}

	resp, err := SnapClient.CreateTransaction(snapReq)
	if err != nil {
		return nil, err
	}

	return &registrationService.CheckoutSession{
		OrderID:     req.OrderID,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// Verify melaporkan paid/unpaid berdasarkan status transaksi di gateway.
func (g *MidtransGateway) Verify(ctx context.Context, orderID string) (bool, error) {
	resp, err := CoreClient.CheckTransaction(orderID)
	if err != nil {
		return false, err
	}
	switch resp.TransactionStatus {
	case "settlement":
		return true, nil
	case "capture":
		return resp.FraudStatus == "accept", nil
	default:
		return false, nil
	}
}

// konversi harga satuan mayor ke minor (gateway pakai minor units)
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
