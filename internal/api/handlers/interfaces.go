package handlers

import "github.com/gin-gonic/gin"

// CustomerHandlerInterface lists the customer endpoints routes bind to.
type CustomerHandlerInterface interface {
	ListCustomers(c *gin.Context)
	SearchCustomers(c *gin.Context)
	GetCustomerByID(c *gin.Context)
	CreateCustomer(c *gin.Context)
	UpdateCustomer(c *gin.Context)
	DeleteCustomer(c *gin.Context)
}

// BikeHandlerInterface lists the bike endpoints routes bind to.
type BikeHandlerInterface interface {
	ListBikes(c *gin.Context)
	SearchBikes(c *gin.Context)
	GetBikeByID(c *gin.Context)
	CreateBike(c *gin.Context)
	UpdateBike(c *gin.Context)
	DeleteBike(c *gin.Context)
	LookupVehicle(c *gin.Context)
}

// WorkOrderHandlerInterface lists the work order endpoints routes bind to.
type WorkOrderHandlerInterface interface {
	ListWorkOrders(c *gin.Context)
	GetWorkOrderByID(c *gin.Context)
	SaveWorkOrder(c *gin.Context)
	RecalculateLine(c *gin.Context)
	UpdateWorkOrderStatus(c *gin.Context)
	DeleteWorkOrder(c *gin.Context)
	PrintWorkOrder(c *gin.Context)
}

// PartHandlerInterface lists the inventory endpoints routes bind to.
type PartHandlerInterface interface {
	ListParts(c *gin.Context)
	GetPartByID(c *gin.Context)
	GetPartByBarcode(c *gin.Context)
	CreatePart(c *gin.Context)
	UpdatePart(c *gin.Context)
	AdjustPartStock(c *gin.Context)
	DeletePart(c *gin.Context)
}

// TodoHandlerInterface lists the tracker endpoints routes bind to.
type TodoHandlerInterface interface {
	ListTodos(c *gin.Context)
	GetTodoByID(c *gin.Context)
	CreateTodo(c *gin.Context)
	UpdateTodo(c *gin.Context)
	DeleteTodo(c *gin.Context)
}

// UserHandlerInterface lists the auth endpoints routes bind to.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
}

var _ CustomerHandlerInterface = (*CustomerHandler)(nil)
var _ BikeHandlerInterface = (*BikeHandler)(nil)
var _ WorkOrderHandlerInterface = (*WorkOrderHandler)(nil)
var _ PartHandlerInterface = (*PartHandler)(nil)
var _ TodoHandlerInterface = (*TodoHandler)(nil)
var _ UserHandlerInterface = (*UserHandler)(nil)
