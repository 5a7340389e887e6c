package rescue

// Published Rescue-Prime instances over Goldilocks, rounds 8, d = 7.

var goldilocksMDS8 = [][]uint64{
	{
		0x14732c45f87debc7, 0xe6d99297dc2f523d, 0x6fa73839a1806877, 0xd5da6d851107610a,
		0xbf2ab278d283311b, 0x0006e902841eb1a0, 0xffffffe4221a6ca5, 0x00000000000ea920,
	},
	{
		0x02747c7c1544ac11, 0x95c7029b3afb3fff, 0x530bdf5887ae8b34, 0x5a94eebaeffbe47d,
		0xada8f565ac4764c9, 0x0dfdb615505c04b5, 0xfe7d069b2a1c8a21, 0x000000bc1155b0a4,
	},
	{
		0x23647df23cdfd9c0, 0x86d3d1e66ff6eab3, 0x331449248936374a, 0x4de4709d4a8e10eb,
		0x7d5fe42ba6740593, 0x0681e4f6ff1b99a6, 0x47aaf5014a6e7182, 0x0942383f8f66e2a0,
	},
	{
		0xcee197006d237495, 0xa877f59b6530b358, 0x4cd08775fe49a04a, 0x9ed7da411f550715,
		0x4109b6963c8fba3d, 0x2dd725d1ca3721fb, 0xf38ee34581a076bc, 0x3a8e51fb87a5ddc5,
	},
	{
		0xe45012c1df25dee3, 0x85413d954de9d3bc, 0x4e6c6c8ea7e24d04, 0x717a3405f77835cc,
		0x4f24221862041750, 0xceb178cc3bcbcdd7, 0x03757f5e7f40038b, 0xb53cf4cd1685e1e4,
	},
	{
		0x6cb6558784f7959c, 0xcbda2e10da4d4ec9, 0x2fb8571a6fdb48bd, 0xd3e5fceeba32cf14,
		0xa5afdcb6f6e326c8, 0x7cc126270ff2c210, 0x556f0c39634db7fd, 0x4bf119430c8962fa,
	},
	{
		0x68f9a9ca9284d01c, 0x76c496b60ecaa92e, 0x0a375191b0f5f972, 0x6160ec419d879f1d,
		0xba5f8a483378d5e7, 0x93d1918084d5e022, 0x0789e520476b7040, 0x5eee80c01078c7e2,
	},
	{
		0x16e27408670433fa, 0x39a1f0a8bcd9672f, 0xeef802e2e2248e30, 0xf7466d4fecfd366d,
		0xa6d49daccf1a2c47, 0xda29d438ef17e5a1, 0xe55f9ad24dff5f9a, 0x62df1e5f00cf2ebe,
	},
}

var goldilocksRC8 = [][]uint64{
	{
		0x48dc4d4899f9ea51, 0xf9ae2fdfb671c2a2, 0xd5370967c6e931fd, 0x68c8605b1712cb98,
		0x09cb4f4e60c7e35c, 0xcc411fd2ecb7184e, 0xd8ac59b4dc74caac, 0x7a81fc5c89849737,
	},
	{
		0x88d6000f340065ab, 0x90360121bb76ba19, 0x4533eb127a8d352b, 0xf6c6461666615df2,
		0x5f9a5d7ddaf81433, 0x7c37be07d68ba565, 0xec99ad2e14346553, 0xc451c6c465c7fe5b,
	},
	{
		0x3503bcd9e97dedf2, 0x2efb8e683dc769b9, 0xdf5be4db53ec2f57, 0xe24115bb13b12dba,
		0x78703700acdb1e6c, 0x06ea36151155e79d, 0xf54e5231f803cd33, 0xd0142049d496aa65,
	},
	{
		0x09d1cac488a5e34a, 0x5d537898181b71ca, 0xdec6f49134643525, 0x1b48b1ca07a6b18e,
		0x82ac738f89fb1bdd, 0x0908cc91dfee154f, 0x8af85a7124835202, 0xc7d790cef7bc0ea9,
	},
	{
		0xc5e156a585efbce8, 0x16fb321e2803c594, 0x629a135b4cbc4b90, 0xa47c19f17c6122f3,
		0xf73fb577343a393e, 0x37426c75c7c0acd7, 0x26f6226e0bcd1599, 0xcfcf1f71b232a6b0,
	},
	{
		0x633749756cff8d66, 0x627adb8d9faa99e2, 0xa9463bd5d97b5889, 0xb1b24a08d03e4450,
		0xf19b380c0c2b9af2, 0x27225943c47577c7, 0xdbb5504da65f774e, 0xd8e80153dc9d71d6,
	},
	{
		0xdd5016c3790109a5, 0xcbfa7d1b0514b124, 0xc35bd2fc284bdcbe, 0x27b011e5661fee67,
		0x44a0d347e872f173, 0xd2b5e0b8f83e6f53, 0x697eee98a6be042a, 0x59e3b9a6424b686a,
	},
	{
		0xf92748d77629c057, 0x56063f1ce396cfab, 0x7f16c812191adfec, 0x83bf18af10987909,
		0xde782cfdade79980, 0x41c6d4cbe4854f97, 0xfdc98bfe3724684a, 0x7a199803e43a9295,
	},
	{
		0xfcc42dfaa9787ba5, 0x8b37afc23e2b8bbd, 0x52e08d84e86667d5, 0x443c2001b7e37af4,
		0x3226da2e2816de96, 0xe7f7d866987ef7ed, 0xcaa88bb146922f16, 0x53ca795efd843970,
	},
	{
		0xa15389d8d9dd9a04, 0xb35c9691c9debd23, 0x9b5356e91d08be51, 0xc728a3ffca5b56a1,
		0x5c4622e25a450c6a, 0x1d3c0838581c96b9, 0xac8f7185c6973979, 0x706ddfad2aeb6c91,
	},
	{
		0x99f05e66ef2138e7, 0xc967c7e09f5b8d77, 0xb01e5c6cd3434d00, 0x42b7280044f20d40,
		0x48446bfa283c9d01, 0x52dcdc2d37ba4ee7, 0xf58362fe1b35f4c6, 0x25e9a1dde599478b,
	},
	{
		0xc1426eff7b91f8aa, 0xddc866f470fdb6c5, 0xf172cd604c912846, 0xf129c49dfcdd3ebb,
		0x47cdb7283d89477c, 0x332f19abc517fc6b, 0xe080445bd93d1ae6, 0x59f77cc2fb1fa50b,
	},
	{
		0x815acf2b71c206f5, 0x735dde3098e9aedd, 0xd58f37ecea7571d9, 0xe98697abebe24454,
		0x662bf4f9941897c5, 0x4c59760b71c2ebab, 0xeb5bc3da23eb4bd1, 0xd1f11656eb857389,
	},
	{
		0x7fa28b567cf63297, 0x18aab8654c1f7de1, 0x467df2d6691d51c5, 0xd1478088a7464cde,
		0x3b617a4ce55c301f, 0x5bbae0ffffa2eef7, 0x090b1b72fd19db1c, 0xc85093e3704e2144,
	},
	{
		0xf4eee76f961854bc, 0x0d167835b8567e60, 0xfbcb296cb62f6ec7, 0x8eae0ce7490b9823,
		0xba0e91a58f44f539, 0xdbae476783c5350c, 0xfb53b08a24e13633, 0x0df795a5e4dbd099,
	},
	{
		0xfd6acb60aafcc490, 0xa4d91b10297c702f, 0x091d6f7e335a37a7, 0x3e211705f420582b,
		0x8909707610d1593c, 0x4fca690bdb6bb019, 0x560153759eb732bd, 0xe98caa70d54fcc9e,
	},
}

var goldilocksMDS12 = [][]uint64{
	{
		0x1d4432c2c62b8560, 0x9bc11561d6440acb, 0x202ca9ebe5cceb64, 0x9bfe2a4f0c017c2a,
		0x6f1ff66150e7e72b, 0x99c7056e7a4e495b, 0x3671223a0ae084fd, 0xee9d983091e3d5a9,
		0x021e37506702caaa, 0x63f74568eb8a4c10, 0xf6c4b0a72dba2fb7, 0x00000000898036b0,
	},
	{
		0x2ec0835c6c55ca7c, 0x4cc36b4624116cae, 0x6b833e9b3184f367, 0xc4925e08b239ff38,
		0x40946583f303b927, 0x4c6292ccf81b0176, 0x2edc329316f945c7, 0x1769b9de2beb36f5,
		0x7385d036486bcb5f, 0xf4f63e1de4711088, 0xd80e5636e790da47, 0x409f2b674968e8b6,
	},
	{
		0x2388d9365f8d086e, 0x95ca47ec855e4eb2, 0x05ab2b5356e05b9e, 0xc0d2cd7eab963979,
		0xf7cd4dcbe23adfad, 0xc95e3c5ffb05edaa, 0xa8f8edee8da2b931, 0xa6b5af17a0f7e23f,
		0x0d8e93bb5b5990d6, 0x2c3a8d613a13810f, 0x404442655843e95b, 0xf5475b511f11afc9,
	},
	{
		0x97d4f25db7d4bae3, 0x7ea6ca3c47cfd890, 0xba8b270db132aca8, 0xbfe968a65d720a56,
		0x56ad2192d27a1592, 0x2b43ced6084ac90f, 0xf1528542c1c708f1, 0x328f12e8482a2dc5,
		0x917ef019c09894b4, 0x386fba1f35a6ed31, 0x7aca524ab57dfcc1, 0x84842e9461432199,
	},
	{
		0xd945a3b972e6545e, 0x044c6c8187d1db7f, 0xdf17bb7a8b70a3d4, 0x4ab87e3a7e93ddd6,
		0xd28b1641cfb56a6c, 0x5c6e359fb8727a31, 0x5b87beea92e0b2ce, 0xd4bfd68ca6d159a1,
		0x254b361e05918ecf, 0xdcc27d13db8a5725, 0x2666d2ce353f36e3, 0x70e84eb1230e409d,
	},
	{
		0xcbd41ae089895ff9, 0x70ba27f427fc468a, 0xebe593c21d3d5084, 0x284d3f173d043bc0,
		0x9b0451ddedf53a94, 0x4b9d26f247444217, 0x8787f807bcbf7469, 0x35765054162bc210,
		0xca4c5ceede976ebb, 0xa6768e87e8400447, 0x732ced96bdb4c4aa, 0x27af50126787e270,
	},
	{
		0x444a0e7d460b2987, 0xb9adab858ff7f4a2, 0x2bfb348d94abae16, 0xda9ed3e85a6cfea2,
		0x08a2d39045f82546, 0xc305f534f614e394, 0x479b7371a0dfac64, 0xf2073fc4629c5419,
		0x8a0574193bb44f01, 0xbd64db499b136800, 0x003467f37d001520, 0xae840a2fa7935fae,
	},
	{
		0x2ecb3a5a4e76cd9d, 0x7b5253aa4e5d296e, 0xd9904d2d6d5d4357, 0xb7c84148102fc9a1,
		0xa89d7544c75dd629, 0x13d0c8233d513e1c, 0x37faacb3482248e5, 0xccda3c18931e54cb,
		0x9f1cbddcf5524b2f, 0xa818c4e3203b2c20, 0xf0b20bd7905d52c1, 0xcb5f2eb35fc48000,
	},
	{
		0x4b3e156b5cc2b9b5, 0xc514abe21838143c, 0x496c10024f7f89f7, 0x0e28687dfb263e48,
		0xc69c1c8c68f3cab6, 0x6ca309ef3ee85638, 0x82f61a93d57a9534, 0x4f538d204147839c,
		0xd520ff01048b2e24, 0x3955de4f89b618c4, 0xe8f1478786466178, 0x9b27d3246d3987b9,
	},
	{
		0x910bc2a89fd955b1, 0xa8525755c08ebda7, 0x938876200811379b, 0x5f8bcf49f0602799,
		0xe3c8a72fa5132910, 0xbd43552e28503732, 0x238048495bd93cb6, 0x3c0fdb9eefab3cd4,
		0x3ac9701d5b6038e0, 0x1ce14d168b57b6ef, 0x1c6a38085ce81245, 0x5edc8b104a9eb19a,
	},
	{
		0x4ec29ed04b4c4964, 0x70b304c1a0fc291f, 0x88c905f3ded7137f, 0x1b35910e8342a387,
		0xd40a1da0ff916ef1, 0xf9ca73079f019da1, 0x01033e3e72e6ce39, 0x7b81d19ba52bcb25,
		0xeba6ca0474260fca, 0x58fe79ae4c0f2cf5, 0xc125d8de133dd49f, 0x4c67085227851f30,
	},
	{
		0x8f32049c8a4e0020, 0xf05daf4764cf2933, 0xa029343fe68b9154, 0x64e63504883c12d4,
		0x41fe4fe19aa4f6aa, 0x1e713f98a7184ddf, 0xa21e9b8b691b563f, 0x6f069368b627d139,
		0x5da04e94bc4258ba, 0xa7decd2f51d2a109, 0xb74cbb64c0b7ce74, 0x4d004d3a724dfe54,
	},
}

var goldilocksRC12 = [][]uint64{
	{
		0xdf4a7c2aeaa76b43, 0x36f6146f159448a3, 0x20806950af2cb240, 0xe52bc17cde4a9396,
		0x22955641abac882e, 0x1f24251cc7584861, 0x0ee166359dc2f227, 0x84e589d15fe9c8b3,
		0xbfbeebeea04d9cfd, 0x0e12626bbef49c65, 0x59c73926c0c09258, 0x090a8b7ab5cba96b,
	},
	{
		0x93edc3c90d41a7bc, 0x5c6891eddf5cfe94, 0xbaf99b281bb03ff9, 0x9c2eb2dd6b7eb3f9,
		0x1e889fc821a4be09, 0x82002d129c81d374, 0x50297b2f9666b8d9, 0xdc622d7b18fca35e,
		0xd110214cb87641e9, 0xee74064efeb7b334, 0x0311f5353a86a3f4, 0x975448f9f7d59930,
	},
	{
		0x5df41d8874c695f8, 0x82da97ffe65920ac, 0x580e84993f50682a, 0x12b5ff159b281de6,
		0x9c39cc1fbe3afa05, 0x8daf7368680a0f5c, 0xc1679bcd580dd7b0, 0x0674d434e3dff25d,
		0xdfbfd639969c6454, 0xd1ebe222c05bf99b, 0xfc8444539e4fa4b2, 0x3e34f988211f5129,
	},
	{
		0x820e016a12d1fa35, 0xd952ff35ebd208c5, 0x2f1f7275b141ae15, 0x09294e1238c74824,
		0x466aea4707d2d1b9, 0xf2380216df52247a, 0x9bb9643d459c4b23, 0x5a25f0df37bdf030,
		0xecc71239a7014b23, 0xaba57ca39ba8e2bb, 0x7ba0e06ee05cb674, 0x1cd6ef3e8e1a8e4d,
	},
	{
		0x3cf604a202e65055, 0x0005eb1f7c758f3f, 0x3a8f84225d1a83ea, 0x11095ba466230bd3,
		0x71ab78d709010bef, 0x72ef94c69b99e5b4, 0xdbc62d71ff4a119d, 0x4dd056313ea417a4,
		0x79ec27cc236fc314, 0xd8e312ad83af2a7c, 0xd8fd14a237f8187b, 0x723a6b7de8e7fc85,
	},
	{
		0xb6c00937ffa0ff87, 0xfd1ebf86249d4eef, 0x6a0af5be41ebe1fc, 0x6c88ada5a967a389,
		0x0f6e094f796a154e, 0x01f0cbe704014831, 0x623364077f0ec4fc, 0x45776b9eb34215ec,
		0x5a07ec086c93391e, 0x4f0b0e5dc84eab49, 0xfbe67d647097a609, 0xb17d4f1db757ef73,
	},
	{
		0x2cff5dd2e15b6b09, 0x984cf4b5d2f28e9c, 0xfdadf07472065cb8, 0xc2eb929d0d9bd828,
		0xadd3584e85d1e760, 0x1a70d2f530089515, 0x81b6095c2961ec14, 0x18145491fbc7c37c,
		0x2e0a379d5a303b49, 0x36c3b409a559d993, 0x062cedee3b5f422d, 0x2b0efb333c1b4ec4,
	},
	{
		0xee3d90f29221fb94, 0x512a4ad495a917b5, 0xc3e0ee4e5be42aa2, 0xd1c1f30697b41ce8,
		0x4924c0bafe03eab3, 0xa853be4100776cf8, 0xfdb6327314910d0c, 0x084a66bdc4d45872,
		0x53d9e5507b940647, 0x0190c823c7dfb248, 0x27fdf46b9d152106, 0x2fc9d067c4cc03a2,
	},
	{
		0x9fee6eaaa885c8a0, 0xe6514d5e6bd053f4, 0xa72e17d101192d78, 0x8f6e371c66d76c94,
		0x34cd7ba573a2c096, 0x439a7c0d8bf89cf7, 0x4c69c6cdcccb5022, 0x0fe3097b897256f0,
		0xdadd08cdb07c6e20, 0x005120ea8ab7c721, 0xd8d56aed1d3b232c, 0x751bec1376b750d2,
	},
	{
		0xb8887a180fedceca, 0x660bc126c2c2d6fb, 0xc8e1c3abb2cbd531, 0x1b9dc069a6dd8cb7,
		0x264c77da403d20f4, 0x51b72162affc1a40, 0x2eb73a2c66e2a4f7, 0x96de27eedfd8809e,
		0x673550c2931904ad, 0x8bef03b956084508, 0x17f9c4fbd53e721c, 0xdc54cadee6558c34,
	},
	{
		0x1cd502044efb620a, 0x0067e87c53a94787, 0x6846ea55e04c937e, 0xc921fc38d2b5458f,
		0xb6535259e247a66b, 0xec8ba314290144a0, 0x7400b44ed05f4b04, 0x5c075e01fb0be205,
		0xe000a30c1c2de0a0, 0xa7e44cd6ee91c152, 0xe62208d413a283d8, 0x9b37682c988a7f6d,
	},
	{
		0xc91b07ecd5e520e4, 0xe886e508cfbde663, 0x3a57d6241dfb2b7d, 0xf1235561577a94de,
		0xe52b52113f35d62b, 0xafd91d2b649b561d, 0x66403afee8e8c4cb, 0x4303746fb5531e6b,
		0x086626a246ee0da4, 0x959912ae6b28ee60, 0xd855ce73157a6a39, 0xe8085cc563759366,
	},
	{
		0xa03af941f674d5db, 0x685ec828e76cec2b, 0x4b6776291ebd3931, 0xf418123ad4a424d6,
		0x734ec470ef28edc6, 0xc264d009d8d2597c, 0xdca434bd40769c7c, 0x0b481cd44944a9c9,
		0x5ea04d088a1d0701, 0xae57661b5af56e24, 0x34fba8c61f95b7fa, 0xeb497ca1f81cd385,
	},
	{
		0x6eb26e6a31ad928e, 0x937327d499dfd51f, 0xa4939cbf0b385a8d, 0x608159f3a343a189,
		0xd6f05f349cd243d5, 0x0b80feee3073e180, 0xdce9a9ef117a7daa, 0x8ce09765f42f07de,
		0x9295e7ca46013110, 0xff52bc22c262edb7, 0x0c3137d856a41485, 0xe616a21fd06d027d,
	},
	{
		0x8937d3fdca04dfc2, 0x16c986e2fb382eba, 0x01ee5045c70ef0c8, 0x08ebafa770a6c938,
		0xbe3e5a7894d4da8a, 0x6b870bd34e65bb36, 0x841ab26977e20b53, 0xd7d76ff20450f97a,
		0xd4ccad9ab88d9755, 0x3f65f37468333171, 0xbaeedd8884d239ea, 0x8dcb991b9ff8a30d,
	},
	{
		0x50ebb1bd1f97059e, 0xd24e10305cc29cf2, 0xe55f63fae5f76e0d, 0xb3ce2b562db82712,
		0xd4b3423421fed2a7, 0x6c7128887ac5fd6b, 0x3c825c9493166ff7, 0x716956326df30e1b,
		0x58487434d42f9c1e, 0x3ac884bddcf5d47b, 0xdc6cac43bad89d05, 0x9b815d1f02e9496d,
	},
}
