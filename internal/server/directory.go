package server

import (
	"context"

	"vican-pos/internal/database/models"
	"vican-pos/internal/rpc"
	"vican-pos/internal/services/directory"
)

type directoryServer struct {
	svc *directory.Service
}

func listFilter(req *rpc.ListRequest) directory.ListFilter {
	return directory.ListFilter{
		Search:    req.Search,
		Active:    req.Active,
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	}
}

func pagination(p directory.Page) rpc.Pagination {
	return rpc.Pagination{NextPageToken: p.NextPageToken, TotalCount: p.TotalCount}
}

func sessionReply(s *directory.Session) *rpc.SessionReply {
	return &rpc.SessionReply{Token: s.Token, ExpiresAt: s.ExpiresAt, User: rpc.UserFromModel(s.User)}
}

func (s *directoryServer) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.SessionReply, error) {
	session, err := s.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return sessionReply(session), nil
}

func (s *directoryServer) QRLogin(ctx context.Context, req *rpc.QRLoginRequest) (*rpc.SessionReply, error) {
	session, err := s.svc.QRLogin(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	return sessionReply(session), nil
}

func (s *directoryServer) IssueLoginToken(ctx context.Context, req *rpc.IDRequest) (*rpc.LoginTokenReply, error) {
	t, err := s.svc.IssueLoginToken(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &rpc.LoginTokenReply{Token: t.Token, ExpiresAt: t.ExpiresAt}, nil
}

// Users

func (s *directoryServer) ListUsers(ctx context.Context, req *rpc.ListRequest) (*rpc.UsersReply, error) {
	users, page, err := s.svc.ListUsers(ctx, listFilter(req))
	if err != nil {
		return nil, err
	}
	out := make([]rpc.User, len(users))
	for i, u := range users {
		out[i] = rpc.UserFromModel(u)
	}
	return &rpc.UsersReply{Users: out, Pagination: pagination(page)}, nil
}

func (s *directoryServer) GetUser(ctx context.Context, req *rpc.IDRequest) (*rpc.User, error) {
	return userReply(s.svc.GetUserByID(ctx, req.ID))
}

func (s *directoryServer) CreateUser(ctx context.Context, req *rpc.CreateUserRequest) (*rpc.User, error) {
	return userReply(s.svc.CreateUser(ctx, directory.UserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}))
}

func (s *directoryServer) UpdateUser(ctx context.Context, req *rpc.UpdateUserRequest) (*rpc.User, error) {
	return userReply(s.svc.UpdateUser(ctx, req.ID, directory.UserUpdate{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	}))
}

func (s *directoryServer) PurgeUser(ctx context.Context, req *rpc.IDRequest) (*rpc.Empty, error) {
	if err := s.svc.PurgeUser(ctx, req.ID); err != nil {
		return nil, err
	}
	return &rpc.Empty{}, nil
}

func userReply(u *models.User, err error) (*rpc.User, error) {
	if err != nil {
		return nil, err
	}
	out := rpc.UserFromModel(*u)
	return &out, nil
}

// Products

func (s *directoryServer) ListProducts(ctx context.Context, req *rpc.ListRequest) (*rpc.ProductsReply, error) {
	products, page, err := s.svc.ListProducts(ctx, listFilter(req))
	if err != nil {
		return nil, err
	}
	out := make([]rpc.Product, len(products))
	for i, p := range products {
		out[i] = rpc.ProductFromModel(p)
	}
	return &rpc.ProductsReply{Products: out, Pagination: pagination(page)}, nil
}

func (s *directoryServer) GetProduct(ctx context.Context, req *rpc.IDRequest) (*rpc.Product, error) {
	return productReply(s.svc.GetProductByID(ctx, req.ID))
}

func (s *directoryServer) CreateProduct(ctx context.Context, req *rpc.CreateProductRequest) (*rpc.Product, error) {
	return productReply(s.svc.CreateProduct(ctx, directory.ProductInput{
		Name:      req.Name,
		CostPrice: req.CostPrice,
		Price:     req.Price,
		Quantity:  req.Quantity,
	}, req.ActorID))
}

func (s *directoryServer) UpdateProduct(ctx context.Context, req *rpc.UpdateProductRequest) (*rpc.Product, error) {
	return productReply(s.svc.UpdateProduct(ctx, req.ID, directory.ProductUpdate{
		Name:      req.Name,
		CostPrice: req.CostPrice,
		Price:     req.Price,
		IsActive:  req.IsActive,
	}))
}

func (s *directoryServer) PurgeProduct(ctx context.Context, req *rpc.IDRequest) (*rpc.Empty, error) {
	if err := s.svc.PurgeProduct(ctx, req.ID); err != nil {
		return nil, err
	}
	return &rpc.Empty{}, nil
}

func productReply(p *models.Product, err error) (*rpc.Product, error) {
	if err != nil {
		return nil, err
	}
	out := rpc.ProductFromModel(*p)
	return &out, nil
}

// Customers

func (s *directoryServer) ListCustomers(ctx context.Context, req *rpc.ListRequest) (*rpc.CustomersReply, error) {
	customers, page, err := s.svc.ListCustomers(ctx, listFilter(req))
	if err != nil {
		return nil, err
	}
	out := make([]rpc.Customer, len(customers))
	for i, c := range customers {
		out[i] = rpc.CustomerFromModel(c)
	}
	return &rpc.CustomersReply{Customers: out, Pagination: pagination(page)}, nil
}

func (s *directoryServer) GetCustomer(ctx context.Context, req *rpc.IDRequest) (*rpc.Customer, error) {
	return customerReply(s.svc.GetCustomerByID(ctx, req.ID))
}

func (s *directoryServer) CreateCustomer(ctx context.Context, req *rpc.CreateCustomerRequest) (*rpc.Customer, error) {
	return customerReply(s.svc.CreateCustomer(ctx, req.Name, req.Phone))
}

func (s *directoryServer) UpdateCustomer(ctx context.Context, req *rpc.UpdateCustomerRequest) (*rpc.Customer, error) {
	return customerReply(s.svc.UpdateCustomer(ctx, req.ID, directory.CustomerUpdate{Name: req.Name, Phone: req.Phone}))
}

func customerReply(c *models.Customer, err error) (*rpc.Customer, error) {
	if err != nil {
		return nil, err
	}
	out := rpc.CustomerFromModel(*c)
	return &out, nil
}

// Expenses

func (s *directoryServer) AddExpense(ctx context.Context, req *rpc.AddExpenseRequest) (*rpc.Expense, error) {
	e, err := s.svc.AddExpense(ctx, directory.ExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}, req.ActorID)
	if err != nil {
		return nil, err
	}
	return &rpc.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.ExpenseDate.Format(directory.DateLayout),
		UserID:      e.UserID,
	}, nil
}
