package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/Yeldokv/Finora/internal/utils/gst"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	itemRepo     portsrepo.ItemReader
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewInvoiceService creates a new invoice service instance.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	itemRepo portsrepo.ItemReader,
	customerRepo portsrepo.CustomerRepositoryFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
	}
}

// CreateInvoice validates the request lines, computes the document totals,
// and persists the invoice together with the stock decrease of every
// referenced item in one transaction. Any invalid or unknown line item fails
// the whole invoice; no partial writes occur.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	lineInputs := make([]gst.LineInput, len(req.Items))
	for i, li := range req.Items {
		lineInputs[i] = gst.LineInput{
			ItemID:   li.ItemID,
			Quantity: li.Quantity,
			Rate:     li.Rate,
			TaxRate:  li.TaxRate,
		}
	}

	totals, err := gst.ComputeTotals(lineInputs)
	if err != nil {
		return nil, err
	}

	if err := s.verifyLineItemsExist(ctx, req.Items); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}

	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber, err = s.NextInvoiceNumber(ctx)
		if err != nil {
			return nil, err
		}
	}

	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: invoiceNumber,
		CustomerID:    req.CustomerID,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		Subtotal:      totals.Subtotal,
		CGSTAmount:    totals.CGST,
		SGSTAmount:    totals.SGST,
		IGSTAmount:    totals.IGST,
		TotalAmount:   totals.TotalAmount,
		Status:        domain.InvoicePending,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	lines := make([]domain.InvoiceItem, len(req.Items))
	stockDeltas := make(map[string]decimal.Decimal)
	for i, li := range req.Items {
		lines[i] = domain.InvoiceItem{
			InvoiceItemID: uuid.NewString(),
			InvoiceID:     invoice.InvoiceID,
			ItemID:        li.ItemID,
			Quantity:      li.Quantity,
			Rate:          li.Rate,
			TaxRate:       li.TaxRate,
			Amount:        totals.Lines[i].Amount,
		}
		// Sales consume stock; the same item may appear on several lines.
		stockDeltas[li.ItemID] = stockDeltas[li.ItemID].Sub(li.Quantity)
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice, lines, stockDeltas); err != nil {
		return nil, err
	}

	invoice.Items = lines
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	items, err := s.invoiceRepo.FindInvoiceItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice and restores the stock its lines consumed.
// Only the most recently created invoice may be deleted; everything older is
// frozen so the stock ledger stays replayable.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return err
	}

	latest, err := s.invoiceRepo.FindLatestInvoice(ctx)
	if err != nil {
		return err
	}
	if latest.InvoiceID != invoiceID {
		return fmt.Errorf("%w: only the most recently created invoice can be deleted", apperrors.ErrConflict)
	}

	lines, err := s.invoiceRepo.FindInvoiceItems(ctx, invoiceID)
	if err != nil {
		return err
	}

	stockDeltas := make(map[string]decimal.Decimal)
	for _, li := range lines {
		stockDeltas[li.ItemID] = stockDeltas[li.ItemID].Add(li.Quantity)
	}

	return s.invoiceRepo.DeleteInvoice(ctx, invoiceID, stockDeltas)
}

func (s *invoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	count, err := s.invoiceRepo.CountInvoices(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%03d", time.Now().UTC().Year(), count+1), nil
}

// verifyLineItemsExist checks every referenced item in one batched lookup.
// A single unknown item fails the whole document.
func (s *invoiceService) verifyLineItemsExist(ctx context.Context, lines []dto.DocumentLineRequest) error {
	itemIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, li := range lines {
		if _, ok := seen[li.ItemID]; ok {
			continue
		}
		seen[li.ItemID] = struct{}{}
		itemIDs = append(itemIDs, li.ItemID)
	}

	items, err := s.itemRepo.FindItemsByIDs(ctx, itemIDs)
	if err != nil {
		return err
	}
	for _, id := range itemIDs {
		if _, ok := items[id]; !ok {
			return fmt.Errorf("%w: item %s does not exist", apperrors.ErrValidation, id)
		}
	}
	return nil
}
