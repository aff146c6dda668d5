package msg

// Numeric reply and error tables from RFC 2812 section 5, plus the
// known command-name table. These are static: built once, queried by
// lookup, never mutated.

const (
	RPL_WELCOME         Reply = 1
	RPL_YOURHOST        Reply = 2
	RPL_CREATED         Reply = 3
	RPL_MYINFO          Reply = 4
	RPL_BOUNCE          Reply = 5
	RPL_TRACELINK       Reply = 200
	RPL_TRACECONNECTING Reply = 201
	RPL_TRACEHANDSHAKE  Reply = 202
	RPL_TRACEUNKNOWN    Reply = 203
	RPL_TRACEOPERATOR   Reply = 204
	RPL_TRACEUSER       Reply = 205
	RPL_TRACESERVER     Reply = 206
	RPL_TRACESERVICE    Reply = 207
	RPL_TRACENEWTYPE    Reply = 208
	RPL_TRACECLASS      Reply = 209
	RPL_TRACERECONNECT  Reply = 210
	RPL_STATSLINKINFO   Reply = 211
	RPL_STATSCOMMANDS   Reply = 212
	RPL_STATSCLINE      Reply = 213
	RPL_STATSNLINE      Reply = 214
	RPL_STATSILINE      Reply = 215
	RPL_STATSKLINE      Reply = 216
	RPL_STATSQLINE      Reply = 217
	RPL_STATSYLINE      Reply = 218
	RPL_ENDOFSTATS      Reply = 219
	RPL_UMODEIS         Reply = 221
	RPL_SERVICEINFO     Reply = 231
	RPL_ENDOFSERVICES   Reply = 232
	RPL_SERVICE         Reply = 233
	RPL_SERVLIST        Reply = 234
	RPL_SERVLISTEND     Reply = 235
	RPL_STATSVLINE      Reply = 240
	RPL_STATSLLINE      Reply = 241
	RPL_STATSUPTIME     Reply = 242
	RPL_STATSOLINE      Reply = 243
	RPL_STATSHLINE      Reply = 244
	RPL_STATSPING       Reply = 246
	RPL_STATSBLINE      Reply = 247
	RPL_STATSDLINE      Reply = 250
	RPL_LUSERCLIENT     Reply = 251
	RPL_LUSEROP         Reply = 252
	RPL_LUSERUNKNOWN    Reply = 253
	RPL_LUSERCHANNELS   Reply = 254
	RPL_LUSERME         Reply = 255
	RPL_ADMINME         Reply = 256
	RPL_ADMINLOC1       Reply = 257
	RPL_ADMINLOC2       Reply = 258
	RPL_ADMINEMAIL      Reply = 259
	RPL_TRACELOG        Reply = 261
	RPL_TRACEEND        Reply = 262
	RPL_TRYAGAIN        Reply = 263
	RPL_NONE            Reply = 300
	RPL_AWAY            Reply = 301
	RPL_USERHOST        Reply = 302
	RPL_ISON            Reply = 303
	RPL_UNAWAY          Reply = 305
	RPL_NOWAWAY         Reply = 306
	RPL_WHOISUSER       Reply = 311
	RPL_WHOISSERVER     Reply = 312
	RPL_WHOISOPERATOR   Reply = 313
	RPL_WHOWASUSER      Reply = 314
	RPL_ENDOFWHO        Reply = 315
	RPL_WHOISCHANOP     Reply = 316
	RPL_WHOISIDLE       Reply = 317
	RPL_ENDOFWHOIS      Reply = 318
	RPL_WHOISCHANNELS   Reply = 319
	RPL_LISTSTART       Reply = 321
	RPL_LIST            Reply = 322
	RPL_LISTEND         Reply = 323
	RPL_CHANNELMODEIS   Reply = 324
	RPL_UNIQOPIS        Reply = 325
	RPL_NOTOPIC         Reply = 331
	RPL_TOPIC           Reply = 332
	RPL_INVITING        Reply = 341
	RPL_SUMMONING       Reply = 342
	RPL_INVITELIST      Reply = 346
	RPL_ENDOFINVITELIST Reply = 347
	RPL_EXCEPTLIST      Reply = 348
	RPL_ENDOFEXCEPTLIST Reply = 349
	RPL_VERSION         Reply = 351
	RPL_WHOREPLY        Reply = 352
	RPL_NAMREPLY        Reply = 353
	RPL_KILLDONE        Reply = 361
	RPL_CLOSING         Reply = 362
	RPL_CLOSEEND        Reply = 363
	RPL_LINKS           Reply = 364
	RPL_ENDOFLINKS      Reply = 365
	RPL_ENDOFNAMES      Reply = 366
	RPL_BANLIST         Reply = 367
	RPL_ENDOFBANLIST    Reply = 368
	RPL_ENDOFWHOWAS     Reply = 369
	RPL_INFO            Reply = 371
	RPL_MOTD            Reply = 372
	RPL_INFOSTART       Reply = 373
	RPL_ENDOFINFO       Reply = 374
	RPL_MOTDSTART       Reply = 375
	RPL_ENDOFMOTD       Reply = 376
	RPL_YOUREOPER       Reply = 381
	RPL_REHASHING       Reply = 382
	RPL_YOURESERVICE    Reply = 383
	RPL_MYPORTIS        Reply = 384
	RPL_TIME            Reply = 391
	RPL_USERSSTART      Reply = 392
	RPL_USERS           Reply = 393
	RPL_ENDOFUSERS      Reply = 394
	RPL_NOUSERS         Reply = 395
)

const (
	ERR_NOSUCHNICK        Error = 401
	ERR_NOSUCHSERVER      Error = 402
	ERR_NOSUCHCHANNEL     Error = 403
	ERR_CANNOTSENDTOCHAN  Error = 404
	ERR_TOOMANYCHANNELS   Error = 405
	ERR_WASNOSUCHNICK     Error = 406
	ERR_TOOMANYTARGETS    Error = 407
	ERR_NOSUCHSERVICE     Error = 408
	ERR_NOORIGIN          Error = 409
	ERR_NORECIPIENT       Error = 411
	ERR_NOTEXTTOSEND      Error = 412
	ERR_NOTOPLEVEL        Error = 413
	ERR_WILDTOPLEVEL      Error = 414
	ERR_BADMASK           Error = 415
	ERR_UNKNOWNCOMMAND    Error = 421
	ERR_NOMOTD            Error = 422
	ERR_NOADMININFO       Error = 423
	ERR_FILEERROR         Error = 424
	ERR_NONICKNAMEGIVEN   Error = 431
	ERR_ERRONEUSNICKNAME  Error = 432
	ERR_NICKNAMEINUSE     Error = 433
	ERR_NICKCOLLISION     Error = 436
	ERR_UNAVAILRESOURCE   Error = 437
	ERR_USERNOTINCHANNEL  Error = 441
	ERR_NOTONCHANNEL      Error = 442
	ERR_USERONCHANNEL     Error = 443
	ERR_NOLOGIN           Error = 444
	ERR_SUMMONDISABLED    Error = 445
	ERR_USERSDISABLED     Error = 446
	ERR_NOTREGISTERED     Error = 451
	ERR_NEEDMOREPARAMS    Error = 461
	ERR_ALREADYREGISTRED  Error = 462
	ERR_NOPERMFORHOST     Error = 463
	ERR_PASSWDMISMATCH    Error = 464
	ERR_YOUREBANNEDCREEP  Error = 465
	ERR_YOUWILLBEBANNED   Error = 466
	ERR_KEYSET            Error = 467
	ERR_CHANNELISFULL     Error = 471
	ERR_UNKNOWNMODE       Error = 472
	ERR_INVITEONLYCHAN    Error = 473
	ERR_BANNEDFROMCHAN    Error = 474
	ERR_BADCHANNELKEY     Error = 475
	ERR_BADCHANMASK       Error = 476
	ERR_NOCHANMODES       Error = 477
	ERR_BANLISTFULL       Error = 478
	ERR_NOPRIVILEGES      Error = 481
	ERR_CHANOPRIVSNEEDED  Error = 482
	ERR_CANTKILLSERVER    Error = 483
	ERR_RESTRICTED        Error = 484
	ERR_UNIQOPPRIVSNEEDED Error = 485
	ERR_NOOPERHOST        Error = 491
	ERR_NOSERVICEHOST     Error = 492
	ERR_UMODEUNKNOWNFLAG  Error = 501
	ERR_USERSDONTMATCH    Error = 502
)

var replyNames = map[Reply]string{
	RPL_WELCOME:         "RPL_WELCOME",
	RPL_YOURHOST:        "RPL_YOURHOST",
	RPL_CREATED:         "RPL_CREATED",
	RPL_MYINFO:          "RPL_MYINFO",
	RPL_BOUNCE:          "RPL_BOUNCE",
	RPL_TRACELINK:       "RPL_TRACELINK",
	RPL_TRACECONNECTING: "RPL_TRACECONNECTING",
	RPL_TRACEHANDSHAKE:  "RPL_TRACEHANDSHAKE",
	RPL_TRACEUNKNOWN:    "RPL_TRACEUNKNOWN",
	RPL_TRACEOPERATOR:   "RPL_TRACEOPERATOR",
	RPL_TRACEUSER:       "RPL_TRACEUSER",
	RPL_TRACESERVER:     "RPL_TRACESERVER",
	RPL_TRACESERVICE:    "RPL_TRACESERVICE",
	RPL_TRACENEWTYPE:    "RPL_TRACENEWTYPE",
	RPL_TRACECLASS:      "RPL_TRACECLASS",
	RPL_TRACERECONNECT:  "RPL_TRACERECONNECT",
	RPL_STATSLINKINFO:   "RPL_STATSLINKINFO",
	RPL_STATSCOMMANDS:   "RPL_STATSCOMMANDS",
	RPL_STATSCLINE:      "RPL_STATSCLINE",
	RPL_STATSNLINE:      "RPL_STATSNLINE",
	RPL_STATSILINE:      "RPL_STATSILINE",
	RPL_STATSKLINE:      "RPL_STATSKLINE",
	RPL_STATSQLINE:      "RPL_STATSQLINE",
	RPL_STATSYLINE:      "RPL_STATSYLINE",
	RPL_ENDOFSTATS:      "RPL_ENDOFSTATS",
	RPL_UMODEIS:         "RPL_UMODEIS",
	RPL_SERVICEINFO:     "RPL_SERVICEINFO",
	RPL_ENDOFSERVICES:   "RPL_ENDOFSERVICES",
	RPL_SERVICE:         "RPL_SERVICE",
	RPL_SERVLIST:        "RPL_SERVLIST",
	RPL_SERVLISTEND:     "RPL_SERVLISTEND",
	RPL_STATSVLINE:      "RPL_STATSVLINE",
	RPL_STATSLLINE:      "RPL_STATSLLINE",
	RPL_STATSUPTIME:     "RPL_STATSUPTIME",
	RPL_STATSOLINE:      "RPL_STATSOLINE",
	RPL_STATSHLINE:      "RPL_STATSHLINE",
	RPL_STATSPING:       "RPL_STATSPING",
	RPL_STATSBLINE:      "RPL_STATSBLINE",
	RPL_STATSDLINE:      "RPL_STATSDLINE",
	RPL_LUSERCLIENT:     "RPL_LUSERCLIENT",
	RPL_LUSEROP:         "RPL_LUSEROP",
	RPL_LUSERUNKNOWN:    "RPL_LUSERUNKNOWN",
	RPL_LUSERCHANNELS:   "RPL_LUSERCHANNELS",
	RPL_LUSERME:         "RPL_LUSERME",
	RPL_ADMINME:         "RPL_ADMINME",
	RPL_ADMINLOC1:       "RPL_ADMINLOC1",
	RPL_ADMINLOC2:       "RPL_ADMINLOC2",
	RPL_ADMINEMAIL:      "RPL_ADMINEMAIL",
	RPL_TRACELOG:        "RPL_TRACELOG",
	RPL_TRACEEND:        "RPL_TRACEEND",
	RPL_TRYAGAIN:        "RPL_TRYAGAIN",
	RPL_NONE:            "RPL_NONE",
	RPL_AWAY:            "RPL_AWAY",
	RPL_USERHOST:        "RPL_USERHOST",
	RPL_ISON:            "RPL_ISON",
	RPL_UNAWAY:          "RPL_UNAWAY",
	RPL_NOWAWAY:         "RPL_NOWAWAY",
	RPL_WHOISUSER:       "RPL_WHOISUSER",
	RPL_WHOISSERVER:     "RPL_WHOISSERVER",
	RPL_WHOISOPERATOR:   "RPL_WHOISOPERATOR",
	RPL_WHOWASUSER:      "RPL_WHOWASUSER",
	RPL_ENDOFWHO:        "RPL_ENDOFWHO",
	RPL_WHOISCHANOP:     "RPL_WHOISCHANOP",
	RPL_WHOISIDLE:       "RPL_WHOISIDLE",
	RPL_ENDOFWHOIS:      "RPL_ENDOFWHOIS",
	RPL_WHOISCHANNELS:   "RPL_WHOISCHANNELS",
	RPL_LISTSTART:       "RPL_LISTSTART",
	RPL_LIST:            "RPL_LIST",
	RPL_LISTEND:         "RPL_LISTEND",
	RPL_CHANNELMODEIS:   "RPL_CHANNELMODEIS",
	RPL_UNIQOPIS:        "RPL_UNIQOPIS",
	RPL_NOTOPIC:         "RPL_NOTOPIC",
	RPL_TOPIC:           "RPL_TOPIC",
	RPL_INVITING:        "RPL_INVITING",
	RPL_SUMMONING:       "RPL_SUMMONING",
	RPL_INVITELIST:      "RPL_INVITELIST",
	RPL_ENDOFINVITELIST: "RPL_ENDOFINVITELIST",
	RPL_EXCEPTLIST:      "RPL_EXCEPTLIST",
	RPL_ENDOFEXCEPTLIST: "RPL_ENDOFEXCEPTLIST",
	RPL_VERSION:         "RPL_VERSION",
	RPL_WHOREPLY:        "RPL_WHOREPLY",
	RPL_NAMREPLY:        "RPL_NAMREPLY",
	RPL_KILLDONE:        "RPL_KILLDONE",
	RPL_CLOSING:         "RPL_CLOSING",
	RPL_CLOSEEND:        "RPL_CLOSEEND",
	RPL_LINKS:           "RPL_LINKS",
	RPL_ENDOFLINKS:      "RPL_ENDOFLINKS",
	RPL_ENDOFNAMES:      "RPL_ENDOFNAMES",
	RPL_BANLIST:         "RPL_BANLIST",
	RPL_ENDOFBANLIST:    "RPL_ENDOFBANLIST",
	RPL_ENDOFWHOWAS:     "RPL_ENDOFWHOWAS",
	RPL_INFO:            "RPL_INFO",
	RPL_MOTD:            "RPL_MOTD",
	RPL_INFOSTART:       "RPL_INFOSTART",
	RPL_ENDOFINFO:       "RPL_ENDOFINFO",
	RPL_MOTDSTART:       "RPL_MOTDSTART",
	RPL_ENDOFMOTD:       "RPL_ENDOFMOTD",
	RPL_YOUREOPER:       "RPL_YOUREOPER",
	RPL_REHASHING:       "RPL_REHASHING",
	RPL_YOURESERVICE:    "RPL_YOURESERVICE",
	RPL_MYPORTIS:        "RPL_MYPORTIS",
	RPL_TIME:            "RPL_TIME",
	RPL_USERSSTART:      "RPL_USERSSTART",
	RPL_USERS:           "RPL_USERS",
	RPL_ENDOFUSERS:      "RPL_ENDOFUSERS",
	RPL_NOUSERS:         "RPL_NOUSERS",
}

var errorNames = map[Error]string{
	ERR_NOSUCHNICK:        "ERR_NOSUCHNICK",
	ERR_NOSUCHSERVER:      "ERR_NOSUCHSERVER",
	ERR_NOSUCHCHANNEL:     "ERR_NOSUCHCHANNEL",
	ERR_CANNOTSENDTOCHAN:  "ERR_CANNOTSENDTOCHAN",
	ERR_TOOMANYCHANNELS:   "ERR_TOOMANYCHANNELS",
	ERR_WASNOSUCHNICK:     "ERR_WASNOSUCHNICK",
	ERR_TOOMANYTARGETS:    "ERR_TOOMANYTARGETS",
	ERR_NOSUCHSERVICE:     "ERR_NOSUCHSERVICE",
	ERR_NOORIGIN:          "ERR_NOORIGIN",
	ERR_NORECIPIENT:       "ERR_NORECIPIENT",
	ERR_NOTEXTTOSEND:      "ERR_NOTEXTTOSEND",
	ERR_NOTOPLEVEL:        "ERR_NOTOPLEVEL",
	ERR_WILDTOPLEVEL:      "ERR_WILDTOPLEVEL",
	ERR_BADMASK:           "ERR_BADMASK",
	ERR_UNKNOWNCOMMAND:    "ERR_UNKNOWNCOMMAND",
	ERR_NOMOTD:            "ERR_NOMOTD",
	ERR_NOADMININFO:       "ERR_NOADMININFO",
	ERR_FILEERROR:         "ERR_FILEERROR",
	ERR_NONICKNAMEGIVEN:   "ERR_NONICKNAMEGIVEN",
	ERR_ERRONEUSNICKNAME:  "ERR_ERRONEUSNICKNAME",
	ERR_NICKNAMEINUSE:     "ERR_NICKNAMEINUSE",
	ERR_NICKCOLLISION:     "ERR_NICKCOLLISION",
	ERR_UNAVAILRESOURCE:   "ERR_UNAVAILRESOURCE",
	ERR_USERNOTINCHANNEL:  "ERR_USERNOTINCHANNEL",
	ERR_NOTONCHANNEL:      "ERR_NOTONCHANNEL",
	ERR_USERONCHANNEL:     "ERR_USERONCHANNEL",
	ERR_NOLOGIN:           "ERR_NOLOGIN",
	ERR_SUMMONDISABLED:    "ERR_SUMMONDISABLED",
	ERR_USERSDISABLED:     "ERR_USERSDISABLED",
	ERR_NOTREGISTERED:     "ERR_NOTREGISTERED",
	ERR_NEEDMOREPARAMS:    "ERR_NEEDMOREPARAMS",
	ERR_ALREADYREGISTRED:  "ERR_ALREADYREGISTRED",
	ERR_NOPERMFORHOST:     "ERR_NOPERMFORHOST",
	ERR_PASSWDMISMATCH:    "ERR_PASSWDMISMATCH",
	ERR_YOUREBANNEDCREEP:  "ERR_YOUREBANNEDCREEP",
	ERR_YOUWILLBEBANNED:   "ERR_YOUWILLBEBANNED",
	ERR_KEYSET:            "ERR_KEYSET",
	ERR_CHANNELISFULL:     "ERR_CHANNELISFULL",
	ERR_UNKNOWNMODE:       "ERR_UNKNOWNMODE",
	ERR_INVITEONLYCHAN:    "ERR_INVITEONLYCHAN",
	ERR_BANNEDFROMCHAN:    "ERR_BANNEDFROMCHAN",
	ERR_BADCHANNELKEY:     "ERR_BADCHANNELKEY",
	ERR_BADCHANMASK:       "ERR_BADCHANMASK",
	ERR_NOCHANMODES:       "ERR_NOCHANMODES",
	ERR_BANLISTFULL:       "ERR_BANLISTFULL",
	ERR_NOPRIVILEGES:      "ERR_NOPRIVILEGES",
	ERR_CHANOPRIVSNEEDED:  "ERR_CHANOPRIVSNEEDED",
	ERR_CANTKILLSERVER:    "ERR_CANTKILLSERVER",
	ERR_RESTRICTED:        "ERR_RESTRICTED",
	ERR_UNIQOPPRIVSNEEDED: "ERR_UNIQOPPRIVSNEEDED",
	ERR_NOOPERHOST:        "ERR_NOOPERHOST",
	ERR_NOSERVICEHOST:     "ERR_NOSERVICEHOST",
	ERR_UMODEUNKNOWNFLAG:  "ERR_UMODEUNKNOWNFLAG",
	ERR_USERSDONTMATCH:    "ERR_USERSDONTMATCH",
}

var knownCommands = map[Known]struct{}{
	"PASS":     {},
	"NICK":     {},
	"USER":     {},
	"OPER":     {},
	"MODE":     {},
	"SERVICE":  {},
	"QUIT":     {},
	"SQUIT":    {},
	"JOIN":     {},
	"PART":     {},
	"TOPIC":    {},
	"NAMES":    {},
	"LIST":     {},
	"INVITE":   {},
	"KICK":     {},
	"PRIVMSG":  {},
	"NOTICE":   {},
	"MOTD":     {},
	"LUSERS":   {},
	"VERSION":  {},
	"STATS":    {},
	"LINKS":    {},
	"TIME":     {},
	"CONNECT":  {},
	"TRACE":    {},
	"ADMIN":    {},
	"INFO":     {},
	"SERVLIST": {},
	"SQUERY":   {},
	"WHO":      {},
	"WHOIS":    {},
	"WHOWAS":   {},
	"KILL":     {},
	"PING":     {},
	"PONG":     {},
	"ERROR":    {},
	"AWAY":     {},
	"REHASH":   {},
	"DIE":      {},
	"RESTART":  {},
	"SUMMON":   {},
	"USERS":    {},
	"WALLOPS":  {},
	"USERHOST": {},
	"ISON":     {},
}

func lookupReply(code uint16) (Reply, bool) {
	_, ok := replyNames[Reply(code)]
	return Reply(code), ok
}

func lookupError(code uint16) (Error, bool) {
	_, ok := errorNames[Error(code)]
	return Error(code), ok
}

func lookupCommand(name []byte) (Known, bool) {
	_, ok := knownCommands[Known(name)]
	return Known(name), ok
}
