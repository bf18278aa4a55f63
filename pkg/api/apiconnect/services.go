// Package apiconnect wires the lifecubes services to Connect handlers and
// clients. Messages are the plain structs of package api, carried by
// JSONCodec.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/lifecubes/pkg/api"
)

const (
	AuthServiceName      = "lifecubes.v1.AuthService"
	ProfileServiceName   = "lifecubes.v1.ProfileService"
	SettingsServiceName  = "lifecubes.v1.SettingsService"
	EventServiceName     = "lifecubes.v1.EventService"
	TagServiceName       = "lifecubes.v1.TagService"
	DashboardServiceName = "lifecubes.v1.DashboardService"
	GridServiceName      = "lifecubes.v1.GridService"
)

// Procedure names, of the form /<service>/<method>.
const (
	AuthServiceRegisterProcedure           = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure              = "/" + AuthServiceName + "/Login"
	AuthServiceRefreshProcedure            = "/" + AuthServiceName + "/Refresh"
	AuthServiceLogoutProcedure             = "/" + AuthServiceName + "/Logout"
	AuthServiceCurrentUserProcedure        = "/" + AuthServiceName + "/CurrentUser"
	AuthServiceChangePasswordProcedure     = "/" + AuthServiceName + "/ChangePassword"
	AuthServiceDeleteAccountProcedure      = "/" + AuthServiceName + "/DeleteAccount"
	ProfileServiceGetProfileProcedure      = "/" + ProfileServiceName + "/GetProfile"
	ProfileServiceUpdateProfileProcedure   = "/" + ProfileServiceName + "/UpdateProfile"
	SettingsServiceGetSettingsProcedure    = "/" + SettingsServiceName + "/GetSettings"
	SettingsServiceUpdateSettingsProcedure = "/" + SettingsServiceName + "/UpdateSettings"
	EventServiceCreateEventProcedure       = "/" + EventServiceName + "/CreateEvent"
	EventServiceUpdateEventProcedure       = "/" + EventServiceName + "/UpdateEvent"
	EventServiceDeleteEventProcedure       = "/" + EventServiceName + "/DeleteEvent"
	EventServiceGetEventProcedure          = "/" + EventServiceName + "/GetEvent"
	EventServiceListEventsProcedure        = "/" + EventServiceName + "/ListEvents"
	EventServiceWeekRangeProcedure         = "/" + EventServiceName + "/WeekRange"
	EventServicePlaceEventProcedure        = "/" + EventServiceName + "/PlaceEvent"
	EventServiceListCategoriesProcedure    = "/" + EventServiceName + "/ListCategories"
	TagServiceListTagsProcedure            = "/" + TagServiceName + "/ListTags"
	DashboardServiceGetDashboardProcedure  = "/" + DashboardServiceName + "/GetDashboard"
	GridServiceGetDecadeProcedure          = "/" + GridServiceName + "/GetDecade"
)

// AuthServiceHandler is implemented by the server side of AuthService,
// which serves account registration, login and token lifecycle.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Refresh(context.Context, *connect.Request[api.RefreshRequest]) (*connect.Response[api.RefreshResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
	CurrentUser(context.Context, *connect.Request[api.CurrentUserRequest]) (*connect.Response[api.CurrentUserResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	DeleteAccount(context.Context, *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler serving every method of svc. It
// returns the path prefix to mount the handler on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", route(map[string]http.Handler{
		AuthServiceRegisterProcedure:       connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceRefreshProcedure:        connect.NewUnaryHandler(AuthServiceRefreshProcedure, svc.Refresh, opts...),
		AuthServiceLogoutProcedure:         connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...),
		AuthServiceCurrentUserProcedure:    connect.NewUnaryHandler(AuthServiceCurrentUserProcedure, svc.CurrentUser, opts...),
		AuthServiceChangePasswordProcedure: connect.NewUnaryHandler(AuthServiceChangePasswordProcedure, svc.ChangePassword, opts...),
		AuthServiceDeleteAccountProcedure:  connect.NewUnaryHandler(AuthServiceDeleteAccountProcedure, svc.DeleteAccount, opts...),
	})
}

// AuthServiceClient is a typed client for AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Refresh(context.Context, *connect.Request[api.RefreshRequest]) (*connect.Response[api.RefreshResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
	CurrentUser(context.Context, *connect.Request[api.CurrentUserRequest]) (*connect.Response[api.CurrentUserResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	DeleteAccount(context.Context, *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error)
}

// NewAuthServiceClient creates a client for the server at baseURL, e.g.
// http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		register:       connect.NewClient[api.RegisterRequest, api.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		refresh:        connect.NewClient[api.RefreshRequest, api.RefreshResponse](httpClient, baseURL+AuthServiceRefreshProcedure, opts...),
		logout:         connect.NewClient[api.LogoutRequest, api.LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
		currentUser:    connect.NewClient[api.CurrentUserRequest, api.CurrentUserResponse](httpClient, baseURL+AuthServiceCurrentUserProcedure, opts...),
		changePassword: connect.NewClient[api.ChangePasswordRequest, api.ChangePasswordResponse](httpClient, baseURL+AuthServiceChangePasswordProcedure, opts...),
		deleteAccount:  connect.NewClient[api.DeleteAccountRequest, api.DeleteAccountResponse](httpClient, baseURL+AuthServiceDeleteAccountProcedure, opts...),
	}
}

type authServiceClient struct {
	register       *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	refresh        *connect.Client[api.RefreshRequest, api.RefreshResponse]
	logout         *connect.Client[api.LogoutRequest, api.LogoutResponse]
	currentUser    *connect.Client[api.CurrentUserRequest, api.CurrentUserResponse]
	changePassword *connect.Client[api.ChangePasswordRequest, api.ChangePasswordResponse]
	deleteAccount  *connect.Client[api.DeleteAccountRequest, api.DeleteAccountResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) Refresh(ctx context.Context, req *connect.Request[api.RefreshRequest]) (*connect.Response[api.RefreshResponse], error) {
	return c.refresh.CallUnary(ctx, req)
}

func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *authServiceClient) CurrentUser(ctx context.Context, req *connect.Request[api.CurrentUserRequest]) (*connect.Response[api.CurrentUserResponse], error) {
	return c.currentUser.CallUnary(ctx, req)
}

func (c *authServiceClient) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	return c.changePassword.CallUnary(ctx, req)
}

func (c *authServiceClient) DeleteAccount(ctx context.Context, req *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error) {
	return c.deleteAccount.CallUnary(ctx, req)
}

// ProfileServiceHandler is implemented by the server side of ProfileService,
// which serves birth date and personal details.
type ProfileServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler serving every method of svc. It
// returns the path prefix to mount the handler on.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ProfileServiceName + "/", route(map[string]http.Handler{
		ProfileServiceGetProfileProcedure:    connect.NewUnaryHandler(ProfileServiceGetProfileProcedure, svc.GetProfile, opts...),
		ProfileServiceUpdateProfileProcedure: connect.NewUnaryHandler(ProfileServiceUpdateProfileProcedure, svc.UpdateProfile, opts...),
	})
}

// ProfileServiceClient is a typed client for ProfileService.
type ProfileServiceClient interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
}

// NewProfileServiceClient creates a client for the server at baseURL, e.g.
// http://localhost:8080.
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProfileServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &profileServiceClient{
		getProfile:    connect.NewClient[api.GetProfileRequest, api.GetProfileResponse](httpClient, baseURL+ProfileServiceGetProfileProcedure, opts...),
		updateProfile: connect.NewClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL+ProfileServiceUpdateProfileProcedure, opts...),
	}
}

type profileServiceClient struct {
	getProfile    *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	updateProfile *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
}

func (c *profileServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *profileServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

// SettingsServiceHandler is implemented by the server side of SettingsService,
// which serves display preferences.
type SettingsServiceHandler interface {
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler serving every method of svc. It
// returns the path prefix to mount the handler on.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + SettingsServiceName + "/", route(map[string]http.Handler{
		SettingsServiceGetSettingsProcedure:    connect.NewUnaryHandler(SettingsServiceGetSettingsProcedure, svc.GetSettings, opts...),
		SettingsServiceUpdateSettingsProcedure: connect.NewUnaryHandler(SettingsServiceUpdateSettingsProcedure, svc.UpdateSettings, opts...),
	})
}

// SettingsServiceClient is a typed client for SettingsService.
type SettingsServiceClient interface {
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error)
}

// NewSettingsServiceClient creates a client for the server at baseURL, e.g.
// http://localhost:8080.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &settingsServiceClient{
		getSettings:    connect.NewClient[api.GetSettingsRequest, api.GetSettingsResponse](httpClient, baseURL+SettingsServiceGetSettingsProcedure, opts...),
		updateSettings: connect.NewClient[api.UpdateSettingsRequest, api.UpdateSettingsResponse](httpClient, baseURL+SettingsServiceUpdateSettingsProcedure, opts...),
	}
}

type settingsServiceClient struct {
	getSettings    *connect.Client[api.GetSettingsRequest, api.GetSettingsResponse]
	updateSettings *connect.Client[api.UpdateSettingsRequest, api.UpdateSettingsResponse]
}

func (c *settingsServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}

func (c *settingsServiceClient) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	return c.updateSettings.CallUnary(ctx, req)
}

// EventServiceHandler is implemented by the server side of EventService,
// which serves life events placed on the week grid.
type EventServiceHandler interface {
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	UpdateEvent(context.Context, *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.UpdateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	GetEvent(context.Context, *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	WeekRange(context.Context, *connect.Request[api.WeekRangeRequest]) (*connect.Response[api.WeekRangeResponse], error)
	PlaceEvent(context.Context, *connect.Request[api.PlaceEventRequest]) (*connect.Response[api.PlaceEventResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
}

// NewEventServiceHandler builds an HTTP handler serving every method of svc. It
// returns the path prefix to mount the handler on.
func NewEventServiceHandler(svc EventServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + EventServiceName + "/", route(map[string]http.Handler{
		EventServiceCreateEventProcedure:    connect.NewUnaryHandler(EventServiceCreateEventProcedure, svc.CreateEvent, opts...),
		EventServiceUpdateEventProcedure:    connect.NewUnaryHandler(EventServiceUpdateEventProcedure, svc.UpdateEvent, opts...),
		EventServiceDeleteEventProcedure:    connect.NewUnaryHandler(EventServiceDeleteEventProcedure, svc.DeleteEvent, opts...),
		EventServiceGetEventProcedure:       connect.NewUnaryHandler(EventServiceGetEventProcedure, svc.GetEvent, opts...),
		EventServiceListEventsProcedure:     connect.NewUnaryHandler(EventServiceListEventsProcedure, svc.ListEvents, opts...),
		EventServiceWeekRangeProcedure:      connect.NewUnaryHandler(EventServiceWeekRangeProcedure, svc.WeekRange, opts...),
		EventServicePlaceEventProcedure:     connect.NewUnaryHandler(EventServicePlaceEventProcedure, svc.PlaceEvent, opts...),
		EventServiceListCategoriesProcedure: connect.NewUnaryHandler(EventServiceListCategoriesProcedure, svc.ListCategories, opts...),
	})
}

// EventServiceClient is a typed client for EventService.
type EventServiceClient interface {
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	UpdateEvent(context.Context, *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.UpdateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	GetEvent(context.Context, *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	WeekRange(context.Context, *connect.Request[api.WeekRangeRequest]) (*connect.Response[api.WeekRangeResponse], error)
	PlaceEvent(context.Context, *connect.Request[api.PlaceEventRequest]) (*connect.Response[api.PlaceEventResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
}

// NewEventServiceClient creates a client for the server at baseURL, e.g.
// http://localhost:8080.
func NewEventServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EventServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &eventServiceClient{
		createEvent:    connect.NewClient[api.CreateEventRequest, api.CreateEventResponse](httpClient, baseURL+EventServiceCreateEventProcedure, opts...),
		updateEvent:    connect.NewClient[api.UpdateEventRequest, api.UpdateEventResponse](httpClient, baseURL+EventServiceUpdateEventProcedure, opts...),
		deleteEvent:    connect.NewClient[api.DeleteEventRequest, api.DeleteEventResponse](httpClient, baseURL+EventServiceDeleteEventProcedure, opts...),
		getEvent:       connect.NewClient[api.GetEventRequest, api.GetEventResponse](httpClient, baseURL+EventServiceGetEventProcedure, opts...),
		listEvents:     connect.NewClient[api.ListEventsRequest, api.ListEventsResponse](httpClient, baseURL+EventServiceListEventsProcedure, opts...),
		weekRange:      connect.NewClient[api.WeekRangeRequest, api.WeekRangeResponse](httpClient, baseURL+EventServiceWeekRangeProcedure, opts...),
		placeEvent:     connect.NewClient[api.PlaceEventRequest, api.PlaceEventResponse](httpClient, baseURL+EventServicePlaceEventProcedure, opts...),
		listCategories: connect.NewClient[api.ListCategoriesRequest, api.ListCategoriesResponse](httpClient, baseURL+EventServiceListCategoriesProcedure, opts...),
	}
}

type eventServiceClient struct {
	createEvent    *connect.Client[api.CreateEventRequest, api.CreateEventResponse]
	updateEvent    *connect.Client[api.UpdateEventRequest, api.UpdateEventResponse]
	deleteEvent    *connect.Client[api.DeleteEventRequest, api.DeleteEventResponse]
	getEvent       *connect.Client[api.GetEventRequest, api.GetEventResponse]
	listEvents     *connect.Client[api.ListEventsRequest, api.ListEventsResponse]
	weekRange      *connect.Client[api.WeekRangeRequest, api.WeekRangeResponse]
	placeEvent     *connect.Client[api.PlaceEventRequest, api.PlaceEventResponse]
	listCategories *connect.Client[api.ListCategoriesRequest, api.ListCategoriesResponse]
}

func (c *eventServiceClient) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) UpdateEvent(ctx context.Context, req *connect.Request[api.UpdateEventRequest]) (*connect.Response[api.UpdateEventResponse], error) {
	return c.updateEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) GetEvent(ctx context.Context, req *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *eventServiceClient) WeekRange(ctx context.Context, req *connect.Request[api.WeekRangeRequest]) (*connect.Response[api.WeekRangeResponse], error) {
	return c.weekRange.CallUnary(ctx, req)
}

func (c *eventServiceClient) PlaceEvent(ctx context.Context, req *connect.Request[api.PlaceEventRequest]) (*connect.Response[api.PlaceEventResponse], error) {
	return c.placeEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// TagServiceHandler is implemented by the server side of TagService,
// which serves the tags used by the caller's events.
type TagServiceHandler interface {
	ListTags(context.Context, *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error)
}

// NewTagServiceHandler builds an HTTP handler serving every method of svc. It
// returns the path prefix to mount the handler on.
func NewTagServiceHandler(svc TagServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + TagServiceName + "/", route(map[string]http.Handler{
		TagServiceListTagsProcedure: connect.NewUnaryHandler(TagServiceListTagsProcedure, svc.ListTags, opts...),
	})
}

// TagServiceClient is a typed client for TagService.
type TagServiceClient interface {
	ListTags(context.Context, *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error)
}

// NewTagServiceClient creates a client for the server at baseURL, e.g.
// http://localhost:8080.
func NewTagServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TagServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &tagServiceClient{
		listTags: connect.NewClient[api.ListTagsRequest, api.ListTagsResponse](httpClient, baseURL+TagServiceListTagsProcedure, opts...),
	}
}

type tagServiceClient struct {
	listTags *connect.Client[api.ListTagsRequest, api.ListTagsResponse]
}

func (c *tagServiceClient) ListTags(ctx context.Context, req *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error) {
	return c.listTags.CallUnary(ctx, req)
}

// DashboardServiceHandler is implemented by the server side of DashboardService,
// which serves a summary of the caller's account.
type DashboardServiceHandler interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler serving every method of svc. It
// returns the path prefix to mount the handler on.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + DashboardServiceName + "/", route(map[string]http.Handler{
		DashboardServiceGetDashboardProcedure: connect.NewUnaryHandler(DashboardServiceGetDashboardProcedure, svc.GetDashboard, opts...),
	})
}

// DashboardServiceClient is a typed client for DashboardService.
type DashboardServiceClient interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

// NewDashboardServiceClient creates a client for the server at baseURL, e.g.
// http://localhost:8080.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DashboardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &dashboardServiceClient{
		getDashboard: connect.NewClient[api.GetDashboardRequest, api.GetDashboardResponse](httpClient, baseURL+DashboardServiceGetDashboardProcedure, opts...),
	}
}

type dashboardServiceClient struct {
	getDashboard *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
}

func (c *dashboardServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

// GridServiceHandler is implemented by the server side of GridService,
// which serves the decade panels of the week grid.
type GridServiceHandler interface {
	GetDecade(context.Context, *connect.Request[api.GetDecadeRequest]) (*connect.Response[api.GetDecadeResponse], error)
}

// NewGridServiceHandler builds an HTTP handler serving every method of svc. It
// returns the path prefix to mount the handler on.
func NewGridServiceHandler(svc GridServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + GridServiceName + "/", route(map[string]http.Handler{
		GridServiceGetDecadeProcedure: connect.NewUnaryHandler(GridServiceGetDecadeProcedure, svc.GetDecade, opts...),
	})
}

// GridServiceClient is a typed client for GridService.
type GridServiceClient interface {
	GetDecade(context.Context, *connect.Request[api.GetDecadeRequest]) (*connect.Response[api.GetDecadeResponse], error)
}

// NewGridServiceClient creates a client for the server at baseURL, e.g.
// http://localhost:8080.
func NewGridServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GridServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &gridServiceClient{
		getDecade: connect.NewClient[api.GetDecadeRequest, api.GetDecadeResponse](httpClient, baseURL+GridServiceGetDecadeProcedure, opts...),
	}
}

type gridServiceClient struct {
	getDecade *connect.Client[api.GetDecadeRequest, api.GetDecadeResponse]
}

func (c *gridServiceClient) GetDecade(ctx context.Context, req *connect.Request[api.GetDecadeRequest]) (*connect.Response[api.GetDecadeResponse], error) {
	return c.getDecade.CallUnary(ctx, req)
}
