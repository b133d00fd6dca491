package customer

import (
	"context"
	"io"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/customer"
	"github.com/groomday/groomday-backend-go/internal/service/file"
)

type CustomerServiceImpl struct {
	customer.CustomerRepository
	customer.DogRepository
	file.FileService
}

func NewCustomerService(customerRepository customer.CustomerRepository, dogRepository customer.DogRepository, fileService file.FileService) customer.CustomerService {
	return &CustomerServiceImpl{
		CustomerRepository: customerRepository,
		DogRepository:      dogRepository,
		FileService:        fileService,
	}
}

func toDogResponse(d customer.Dog) customer.DogResponse {
	resp := customer.DogResponse{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Name:       d.Name,
		Breed:      d.Breed,
		WeightKg:   d.WeightKg,
		Sex:        (*string)(d.Sex),
		PhotoURL:   d.PhotoURL,
		Memo:       d.Memo,
	}
	if d.BirthDate != nil {
		birthDate := d.BirthDate.Format("2006-01-02")
		resp.BirthDate = &birthDate
	}
	return resp
}

func toResponse(c customer.Customer, dogs []customer.Dog) customer.Response {
	resp := customer.Response{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Memo:      c.Memo,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	for _, d := range dogs {
		resp.Dogs = append(resp.Dogs, toDogResponse(d))
	}
	return resp
}

// Create implements customer.CustomerService.
func (s *CustomerServiceImpl) Create(ctx context.Context, shopID string, req customer.CreateRequest) (customer.Response, error) {
	created, err := s.CustomerRepository.Create(ctx, customer.Customer{
		ShopID: shopID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Memo:   req.Memo,
	})
	if err != nil {
		return customer.Response{}, err
	}
	return toResponse(created, nil), nil
}

// Get implements customer.CustomerService.
func (s *CustomerServiceImpl) Get(ctx context.Context, shopID, customerID string) (customer.Response, error) {
	c, err := s.getShopCustomer(ctx, shopID, customerID)
	if err != nil {
		return customer.Response{}, err
	}

	dogs, err := s.DogRepository.ListByCustomer(ctx, c.ID)
	if err != nil {
		return customer.Response{}, err
	}
	return toResponse(c, dogs), nil
}

// List implements customer.CustomerService.
func (s *CustomerServiceImpl) List(ctx context.Context, shopID, search string, page, limit int) ([]customer.Response, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}

	customers, err := s.CustomerRepository.List(ctx, shopID, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.CustomerRepository.Count(ctx, shopID, search)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]customer.Response, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, toResponse(c, nil))
	}
	return responses, total, nil
}

// Update implements customer.CustomerService.
func (s *CustomerServiceImpl) Update(ctx context.Context, shopID, customerID string, req customer.UpdateRequest) (customer.Response, error) {
	c, err := s.getShopCustomer(ctx, shopID, customerID)
	if err != nil {
		return customer.Response{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Memo != nil {
		c.Memo = req.Memo
	}

	updated, err := s.CustomerRepository.Update(ctx, c)
	if err != nil {
		return customer.Response{}, err
	}
	return toResponse(updated, nil), nil
}

// Delete implements customer.CustomerService.
func (s *CustomerServiceImpl) Delete(ctx context.Context, shopID, customerID string) error {
	c, err := s.getShopCustomer(ctx, shopID, customerID)
	if err != nil {
		return err
	}
	return s.CustomerRepository.Delete(ctx, c.ID)
}

// AddDog implements customer.CustomerService.
func (s *CustomerServiceImpl) AddDog(ctx context.Context, shopID, customerID string, req customer.DogRequest) (customer.DogResponse, error) {
	c, err := s.getShopCustomer(ctx, shopID, customerID)
	if err != nil {
		return customer.DogResponse{}, err
	}

	d := customer.Dog{
		ShopID:     shopID,
		CustomerID: c.ID,
		Name:       req.Name,
		Breed:      req.Breed,
		WeightKg:   req.WeightKg,
		Sex:        (*customer.DogSex)(req.Sex),
		Memo:       req.Memo,
	}
	if req.BirthDate != nil {
		birthDate, _ := time.Parse("2006-01-02", *req.BirthDate)
		d.BirthDate = &birthDate
	}

	created, err := s.DogRepository.Create(ctx, d)
	if err != nil {
		return customer.DogResponse{}, err
	}
	return toDogResponse(created), nil
}

// UpdateDog implements customer.CustomerService.
func (s *CustomerServiceImpl) UpdateDog(ctx context.Context, shopID, dogID string, req customer.DogRequest) (customer.DogResponse, error) {
	d, err := s.getShopDog(ctx, shopID, dogID)
	if err != nil {
		return customer.DogResponse{}, err
	}

	d.Name = req.Name
	d.Breed = req.Breed
	d.WeightKg = req.WeightKg
	d.Sex = (*customer.DogSex)(req.Sex)
	d.Memo = req.Memo
	d.BirthDate = nil
	if req.BirthDate != nil {
		birthDate, _ := time.Parse("2006-01-02", *req.BirthDate)
		d.BirthDate = &birthDate
	}

	updated, err := s.DogRepository.Update(ctx, d)
	if err != nil {
		return customer.DogResponse{}, err
	}
	return toDogResponse(updated), nil
}

// DeleteDog implements customer.CustomerService.
func (s *CustomerServiceImpl) DeleteDog(ctx context.Context, shopID, dogID string) error {
	d, err := s.getShopDog(ctx, shopID, dogID)
	if err != nil {
		return err
	}
	return s.DogRepository.Delete(ctx, d.ID)
}

// UploadDogPhoto implements customer.CustomerService.
func (s *CustomerServiceImpl) UploadDogPhoto(ctx context.Context, shopID, dogID string, fileReader io.Reader, filename string) (string, error) {
	d, err := s.getShopDog(ctx, shopID, dogID)
	if err != nil {
		return "", err
	}

	path, err := s.FileService.UploadDogPhoto(ctx, shopID, d.ID, fileReader, filename)
	if err != nil {
		return "", err
	}

	url, err := s.FileService.GetFileURL(ctx, path, 0)
	if err != nil {
		return "", err
	}

	if err := s.DogRepository.UpdatePhoto(ctx, d.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *CustomerServiceImpl) getShopCustomer(ctx context.Context, shopID, customerID string) (customer.Customer, error) {
	c, err := s.CustomerRepository.GetByID(ctx, customerID)
	if err != nil {
		return customer.Customer{}, err
	}
	if c.ShopID != shopID {
		return customer.Customer{}, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (s *CustomerServiceImpl) getShopDog(ctx context.Context, shopID, dogID string) (customer.Dog, error) {
	d, err := s.DogRepository.GetByID(ctx, dogID)
	if err != nil {
		return customer.Dog{}, err
	}
	if d.ShopID != shopID {
		return customer.Dog{}, customer.ErrDogNotFound
	}
	return d, nil
}
