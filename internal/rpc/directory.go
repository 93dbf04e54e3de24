package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const DirectoryServiceName = "pos.DirectoryService"

type DirectoryServer interface {
	Login(context.Context, *LoginRequest) (*SessionReply, error)
	QRLogin(context.Context, *QRLoginRequest) (*SessionReply, error)
	IssueLoginToken(context.Context, *IDRequest) (*LoginTokenReply, error)
	ListUsers(context.Context, *ListRequest) (*UsersReply, error)
	GetUser(context.Context, *IDRequest) (*User, error)
	CreateUser(context.Context, *CreateUserRequest) (*User, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*User, error)
	PurgeUser(context.Context, *IDRequest) (*Empty, error)
	ListProducts(context.Context, *ListRequest) (*ProductsReply, error)
	GetProduct(context.Context, *IDRequest) (*Product, error)
	CreateProduct(context.Context, *CreateProductRequest) (*Product, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*Product, error)
	PurgeProduct(context.Context, *IDRequest) (*Empty, error)
	ListCustomers(context.Context, *ListRequest) (*CustomersReply, error)
	GetCustomer(context.Context, *IDRequest) (*Customer, error)
	CreateCustomer(context.Context, *CreateCustomerRequest) (*Customer, error)
	UpdateCustomer(context.Context, *UpdateCustomerRequest) (*Customer, error)
	AddExpense(context.Context, *AddExpenseRequest) (*Expense, error)
}

var DirectoryServiceDesc = grpc.ServiceDesc{
	ServiceName: DirectoryServiceName,
	HandlerType: (*DirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(DirectoryServiceName, "Login", DirectoryServer.Login),
		unary(DirectoryServiceName, "QRLogin", DirectoryServer.QRLogin),
		unary(DirectoryServiceName, "IssueLoginToken", DirectoryServer.IssueLoginToken),
		unary(DirectoryServiceName, "ListUsers", DirectoryServer.ListUsers),
		unary(DirectoryServiceName, "GetUser", DirectoryServer.GetUser),
		unary(DirectoryServiceName, "CreateUser", DirectoryServer.CreateUser),
		unary(DirectoryServiceName, "UpdateUser", DirectoryServer.UpdateUser),
		unary(DirectoryServiceName, "PurgeUser", DirectoryServer.PurgeUser),
		unary(DirectoryServiceName, "ListProducts", DirectoryServer.ListProducts),
		unary(DirectoryServiceName, "GetProduct", DirectoryServer.GetProduct),
		unary(DirectoryServiceName, "CreateProduct", DirectoryServer.CreateProduct),
		unary(DirectoryServiceName, "UpdateProduct", DirectoryServer.UpdateProduct),
		unary(DirectoryServiceName, "PurgeProduct", DirectoryServer.PurgeProduct),
		unary(DirectoryServiceName, "ListCustomers", DirectoryServer.ListCustomers),
		unary(DirectoryServiceName, "GetCustomer", DirectoryServer.GetCustomer),
		unary(DirectoryServiceName, "CreateCustomer", DirectoryServer.CreateCustomer),
		unary(DirectoryServiceName, "UpdateCustomer", DirectoryServer.UpdateCustomer),
		unary(DirectoryServiceName, "AddExpense", DirectoryServer.AddExpense),
	},
	Metadata: "pos/directory",
}

func RegisterDirectoryServer(s grpc.ServiceRegistrar, srv DirectoryServer) {
	s.RegisterService(&DirectoryServiceDesc, srv)
}

type DirectoryClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionReply, error)
	QRLogin(ctx context.Context, in *QRLoginRequest, opts ...grpc.CallOption) (*SessionReply, error)
	IssueLoginToken(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*LoginTokenReply, error)
	ListUsers(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*UsersReply, error)
	GetUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*User, error)
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error)
	PurgeUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	ListProducts(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ProductsReply, error)
	GetProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Product, error)
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*Product, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*Product, error)
	PurgeProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error)
	ListCustomers(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*CustomersReply, error)
	GetCustomer(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Customer, error)
	CreateCustomer(ctx context.Context, in *CreateCustomerRequest, opts ...grpc.CallOption) (*Customer, error)
	UpdateCustomer(ctx context.Context, in *UpdateCustomerRequest, opts ...grpc.CallOption) (*Customer, error)
	AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*Expense, error)
}

type directoryClient struct {
	cc grpc.ClientConnInterface
}

func NewDirectoryClient(cc grpc.ClientConnInterface) DirectoryClient {
	return &directoryClient{cc: cc}
}

func (c *directoryClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionReply, error) {
	return invoke[SessionReply](ctx, c.cc, DirectoryServiceName, "Login", in, opts)
}

func (c *directoryClient) QRLogin(ctx context.Context, in *QRLoginRequest, opts ...grpc.CallOption) (*SessionReply, error) {
	return invoke[SessionReply](ctx, c.cc, DirectoryServiceName, "QRLogin", in, opts)
}

func (c *directoryClient) IssueLoginToken(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*LoginTokenReply, error) {
	return invoke[LoginTokenReply](ctx, c.cc, DirectoryServiceName, "IssueLoginToken", in, opts)
}

func (c *directoryClient) ListUsers(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*UsersReply, error) {
	return invoke[UsersReply](ctx, c.cc, DirectoryServiceName, "ListUsers", in, opts)
}

func (c *directoryClient) GetUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, DirectoryServiceName, "GetUser", in, opts)
}

func (c *directoryClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, DirectoryServiceName, "CreateUser", in, opts)
}

func (c *directoryClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, DirectoryServiceName, "UpdateUser", in, opts)
}

func (c *directoryClient) PurgeUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, DirectoryServiceName, "PurgeUser", in, opts)
}

func (c *directoryClient) ListProducts(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ProductsReply, error) {
	return invoke[ProductsReply](ctx, c.cc, DirectoryServiceName, "ListProducts", in, opts)
}

func (c *directoryClient) GetProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, DirectoryServiceName, "GetProduct", in, opts)
}

func (c *directoryClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, DirectoryServiceName, "CreateProduct", in, opts)
}

func (c *directoryClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, DirectoryServiceName, "UpdateProduct", in, opts)
}

func (c *directoryClient) PurgeProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, DirectoryServiceName, "PurgeProduct", in, opts)
}

func (c *directoryClient) ListCustomers(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*CustomersReply, error) {
	return invoke[CustomersReply](ctx, c.cc, DirectoryServiceName, "ListCustomers", in, opts)
}

func (c *directoryClient) GetCustomer(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Customer, error) {
	return invoke[Customer](ctx, c.cc, DirectoryServiceName, "GetCustomer", in, opts)
}

func (c *directoryClient) CreateCustomer(ctx context.Context, in *CreateCustomerRequest, opts ...grpc.CallOption) (*Customer, error) {
	return invoke[Customer](ctx, c.cc, DirectoryServiceName, "CreateCustomer", in, opts)
}

func (c *directoryClient) UpdateCustomer(ctx context.Context, in *UpdateCustomerRequest, opts ...grpc.CallOption) (*Customer, error) {
	return invoke[Customer](ctx, c.cc, DirectoryServiceName, "UpdateCustomer", in, opts)
}

func (c *directoryClient) AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*Expense, error) {
	return invoke[Expense](ctx, c.cc, DirectoryServiceName, "AddExpense", in, opts)
}
