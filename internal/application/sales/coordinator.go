// Package sales coordina las mutaciones de ventas con el stock de productos.
//
// Invariante: para cada producto, stock = stock_inicial − Σ cantidades de ventas activas
// (salvo ediciones manuales del stock). Cada operación corre en una sola transacción que
// bloquea las filas involucradas (SELECT FOR UPDATE) antes de verificar el stock, de modo que
// dos ventas concurrentes sobre el mismo producto nunca pasan ambas la verificación.
package sales

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Coordinator es el único componente que crea, modifica o elimina ventas.
// No guarda estado en memoria: todo pasa por la base dentro de la transacción.
type Coordinator struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewCoordinator construye el coordinador. saleRepo se usa solo para lecturas fuera de tx.
func NewCoordinator(txRunner TxRunner, saleRepo repository.SaleRepository) *Coordinator {
	return &Coordinator{txRunner: txRunner, saleRepo: saleRepo}
}

// CreateSaleInput datos para registrar una venta.
type CreateSaleInput struct {
	Customer  string
	ProductID int64
	Quantity  int
	Date      time.Time
}

// UpdateSaleInput datos para modificar una venta. ProductID puede diferir del actual (reasignación).
type UpdateSaleInput struct {
	ID        int64
	Customer  string
	ProductID int64
	Quantity  int
	Date      time.Time
}

func checkInput(customer string, productID int64, quantity int, date time.Time) error {
	if strings.TrimSpace(customer) == "" || productID <= 0 || quantity <= 0 || date.IsZero() {
		return domain.ErrInvalidInput
	}
	return nil
}

// dateOnly descarta la hora; la columna es DATE.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create registra una venta y descuenta el stock en la misma transacción.
//
// Retorna:
//   - domain.ErrProductNotFound   si el producto no existe.
//   - domain.ErrInsufficientStock si stock < cantidad (no se escribe nada).
func (c *Coordinator) Create(ctx context.Context, in CreateSaleInput) (*entity.Sale, error) {
	if err := checkInput(in.Customer, in.ProductID, in.Quantity, in.Date); err != nil {
		return nil, err
	}

	var created *entity.Sale
	err := c.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		product, err := productRepo.GetByIDForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if !product.HasStock(in.Quantity) {
			return domain.ErrInsufficientStock
		}

		productID := product.ID
		productName := product.Name
		sale := &entity.Sale{
			Customer:    strings.TrimSpace(in.Customer),
			ProductID:   &productID,
			ProductName: &productName,
			Quantity:    in.Quantity,
			Date:        dateOnly(in.Date),
			Total:       entity.SaleTotal(product.Price, in.Quantity),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(ctx, product.ID, -in.Quantity); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update modifica una venta y ajusta el stock por la diferencia de cantidades.
// Si cambia el producto, devuelve la cantidad anterior al producto previo (si aún existe)
// y descuenta la cantidad nueva del producto destino. El total se recalcula con el precio vigente.
func (c *Coordinator) Update(ctx context.Context, in UpdateSaleInput) (*entity.Sale, error) {
	if err := checkInput(in.Customer, in.ProductID, in.Quantity, in.Date); err != nil {
		return nil, err
	}

	var updated *entity.Sale
	err := c.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		sale, err := saleRepo.GetByIDForUpdate(ctx, in.ID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}

		var target *entity.Product
		if sale.ProductID != nil && *sale.ProductID == in.ProductID {
			target, err = c.adjustSameProduct(ctx, productRepo, in.ProductID, in.Quantity-sale.Quantity)
		} else {
			target, err = c.reassignProduct(ctx, productRepo, sale, in.ProductID, in.Quantity)
		}
		if err != nil {
			return err
		}

		productID := target.ID
		productName := target.Name
		sale.Customer = strings.TrimSpace(in.Customer)
		sale.ProductID = &productID
		sale.ProductName = &productName
		sale.Quantity = in.Quantity
		sale.Date = dateOnly(in.Date)
		sale.Total = entity.SaleTotal(target.Price, in.Quantity)
		if err := saleRepo.Update(ctx, sale); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// adjustSameProduct aplica stockDelta = nueva − anterior sobre el mismo producto.
func (c *Coordinator) adjustSameProduct(
	ctx context.Context,
	productRepo repository.ProductRepository,
	productID int64,
	stockDelta int,
) (*entity.Product, error) {
	product, err := productRepo.GetByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if !product.HasStock(stockDelta) {
		return nil, domain.ErrInsufficientStock
	}
	if stockDelta != 0 {
		if err := productRepo.AdjustStock(ctx, product.ID, -stockDelta); err != nil {
			return nil, err
		}
		product.Stock -= stockDelta
	}
	return product, nil
}

// reassignProduct mueve la venta a otro producto. Bloquea ambas filas en orden ascendente
// de ID para que dos reasignaciones cruzadas no se bloqueen mutuamente.
func (c *Coordinator) reassignProduct(
	ctx context.Context,
	productRepo repository.ProductRepository,
	sale *entity.Sale,
	newProductID int64,
	newQuantity int,
) (*entity.Product, error) {
	ids := []int64{newProductID}
	if sale.ProductID != nil {
		ids = append(ids, *sale.ProductID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	locked := make(map[int64]*entity.Product, len(ids))
	for _, id := range ids {
		p, err := productRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = p
	}

	target := locked[newProductID]
	if target == nil {
		return nil, domain.ErrProductNotFound
	}
	if !target.HasStock(newQuantity) {
		return nil, domain.ErrInsufficientStock
	}

	if sale.ProductID != nil {
		if previous := locked[*sale.ProductID]; previous != nil {
			if err := productRepo.AdjustStock(ctx, previous.ID, sale.Quantity); err != nil {
				return nil, err
			}
		}
	}
	if err := productRepo.AdjustStock(ctx, target.ID, -newQuantity); err != nil {
		return nil, err
	}
	target.Stock -= newQuantity
	return target, nil
}

// Delete elimina la venta y devuelve su cantidad al stock del producto, si aún existe.
func (c *Coordinator) Delete(ctx context.Context, id int64) error {
	return c.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		sale, err := saleRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}
		if err := saleRepo.Delete(ctx, sale.ID); err != nil {
			return err
		}
		if sale.ProductID == nil {
			return nil
		}
		product, err := productRepo.GetByIDForUpdate(ctx, *sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		return productRepo.AdjustStock(ctx, product.ID, sale.Quantity)
	})
}

// GetByID obtiene una venta con el nombre del producto resuelto.
func (c *Coordinator) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := c.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

// List devuelve todas las ventas con el nombre del producto.
func (c *Coordinator) List(ctx context.Context) ([]*entity.Sale, error) {
	return c.saleRepo.List(ctx)
}
